// Package txtmail sends email, and carrier email-to-SMS text
// messages, through an authenticated SMTP relay. Credentials are set
// once per Client and held only in memory; nothing is persisted
// across process restarts.
//
// A typical session sets credentials, then sends:
//
//	c := txtmail.New()
//	err := c.SetCredentials(txtmail.CredentialParams{
//		Username:    "relay-user",
//		PhoneNumber: "5551234567",
//		Carrier:     "ATT",
//		FromAddress: "me@example.com",
//	})
//	// The password was prompted for on the terminal since it wasn't
//	// supplied above.
//	if err == nil {
//		err = c.SendTextMessage("the build is green")
//	}
package txtmail

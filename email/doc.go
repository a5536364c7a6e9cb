package email

// email is responsible for transmitting a single message to an SMTP
// relay, including connecting to the server, negotiating TLS and
// authentication, and sending the plain-text body. It does not
// interpret message content, and it does not retry: one call, one
// connection, one delivery attempt.

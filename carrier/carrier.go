// Package carrier maps US mobile carriers to the domains of their
// email-to-SMS gateways. The set of carriers is closed: the four
// constants below are the only values the rest of the module accepts.
package carrier

import "fmt"

// Carrier identifies a mobile carrier with a known email-to-SMS
// gateway.
type Carrier string

const (
	ATT     Carrier = "ATT"
	Verizon Carrier = "Verizon"
	TMobile Carrier = "TMobile"
	Sprint  Carrier = "Sprint"
)

// domains maps each carrier to the domain its gateway accepts mail
// on. Messages sent to <number>@<domain> arrive as texts.
var domains = map[Carrier]string{
	ATT:     "txt.att.net",
	Verizon: "vtext.com",
	TMobile: "tmomail.net",
	Sprint:  "messaging.sprintpcs.com",
}

// Parse matches s against the recognized carrier names. The match is
// case sensitive: "att" is not a carrier, "ATT" is.
func Parse(s string) (Carrier, error) {
	c := Carrier(s)
	if _, ok := domains[c]; !ok {
		return "", fmt.Errorf(
			"unrecognized carrier %q: must be one of ATT, Verizon, TMobile, or Sprint",
			s,
		)
	}
	return c, nil
}

// Domain returns the gateway domain for c, or an empty string when c
// is not one of the recognized carriers.
func (c Carrier) Domain() string {
	return domains[c]
}

// GatewayAddress builds the email address that delivers to phone as a
// text message through c's gateway.
func (c Carrier) GatewayAddress(phone string) string {
	return phone + "@" + c.Domain()
}

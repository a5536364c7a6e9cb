package txtmail

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/cmackin/txtmail/carrier"
	"github.com/cmackin/txtmail/email"
	"github.com/cmackin/txtmail/secret"
)

// credentials is the one record a Client stores between calls. All
// five fields are replaced together by SetCredentials; sends read a
// copy of the whole record.
type credentials struct {
	username      string
	password      string
	phoneNumber   string
	gatewayDomain string
	fromAddress   string
}

// Client sends email and text messages through one SMTP relay. The
// zero value is not usable; construct with New. A Client is safe for
// concurrent use: the credential record is guarded, and each send
// works from a snapshot of it rather than holding the lock across
// network I/O.
type Client struct {
	mu      sync.Mutex
	creds   credentials
	relay   email.RelayConfig // relay coordinates and TLS settings; auth comes from creds
	secrets secret.Source
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithRelay points the Client at an SMTP relay other than the
// default.
func WithRelay(host string, port int) Option {
	return func(c *Client) {
		c.relay.Host = host
		c.relay.Port = port
	}
}

// WithImplicitTLS makes the Client open a TLS connection outright
// instead of upgrading with STARTTLS, for relays that expect TLS on
// connect.
func WithImplicitTLS(on bool) Option {
	return func(c *Client) {
		c.relay.ImplicitTLS = on
	}
}

// WithInsecureSkipVerify disables certificate verification against
// the relay. Only test servers with self-signed certs should need
// this.
func WithInsecureSkipVerify(on bool) Option {
	return func(c *Client) {
		c.relay.InsecureSkipVerify = on
	}
}

// WithSecretSource replaces the no-echo terminal prompt used when
// SetCredentials is called without a password.
func WithSecretSource(src secret.Source) Option {
	return func(c *Client) {
		c.secrets = src
	}
}

// New returns a Client pointed at the default relay. Pass options to
// redirect it or to change how missing passwords are obtained.
func New(opts ...Option) *Client {
	c := &Client{
		relay: email.RelayConfig{
			Host: email.DefaultHost,
			Port: email.DefaultPort,
		},
		secrets: secret.Terminal{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CredentialParams carries the values SetCredentials stores.
type CredentialParams struct {
	Username string
	// Password may be left empty, in which case the Client's secret
	// source is asked for it: a no-echo terminal prompt by default.
	Password    string
	PhoneNumber string
	// Carrier must exactly match one of the recognized carrier names:
	// ATT, Verizon, TMobile, or Sprint.
	Carrier     string
	FromAddress string
}

// SetCredentials validates p and replaces the stored credential
// record as a whole. The carrier is resolved to its gateway domain
// here, so sends don't consult the directory again. On any error the
// previously stored record is left fully intact.
func (c *Client) SetCredentials(p CredentialParams) error {
	if p.Username == "" {
		return &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if p.PhoneNumber == "" {
		return &ValidationError{Field: "phone number", Reason: "must not be empty"}
	}
	if p.FromAddress == "" {
		return &ValidationError{Field: "from address", Reason: "must not be empty"}
	}
	cr, err := carrier.Parse(p.Carrier)
	if err != nil {
		return &ValidationError{Field: "carrier", Reason: err.Error()}
	}

	pw := p.Password
	if pw == "" {
		pw, err = c.secrets.Secret()
		if err != nil {
			return fmt.Errorf("can't obtain the SMTP password: %v", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = credentials{
		username:      p.Username,
		password:      pw,
		phoneNumber:   p.PhoneNumber,
		gatewayDomain: cr.Domain(),
		fromAddress:   p.FromAddress,
	}
	return nil
}

// snapshot copies the stored record so a send works from a consistent
// view of all five fields.
func (c *Client) snapshot() credentials {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creds
}

// SendEmail transmits one plain-text email through the relay,
// blocking until the relay accepts or rejects it. An empty from falls
// back to the stored from address for this call only; the stored
// default is unchanged afterward. Returns a *CredentialsNotSetError
// without dialing when the username or password is unset, and a
// *email.TransportError when the relay can't be reached or refuses
// the message.
func (c *Client) SendEmail(to, from, subject, body string) error {
	if to == "" {
		return &ValidationError{Field: "to", Reason: "must not be empty"}
	}
	if subject == "" {
		return &ValidationError{Field: "subject", Reason: "must not be empty"}
	}
	if body == "" {
		return &ValidationError{Field: "body", Reason: "must not be empty"}
	}
	return c.send(to, from, subject, body)
}

// SendTextMessage delivers message to the stored phone number as a
// text, by mailing the carrier's email-to-SMS gateway. The subject is
// always empty and message becomes the body. Returns a
// *CredentialsNotSetError without dialing when the phone number or
// carrier is unset.
func (c *Client) SendTextMessage(message string) error {
	if message == "" {
		return &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	cr := c.snapshot()
	if cr.phoneNumber == "" || cr.gatewayDomain == "" {
		err := &CredentialsNotSetError{
			Missing: []string{"a phone number", "a carrier"},
		}
		log.Error().Msg(err.Error())
		return err
	}

	return c.send(cr.phoneNumber+"@"+cr.gatewayDomain, "", "", message)
}

// send is the shared relay path for both public send operations.
// Unlike SendEmail it allows an empty subject, which text messages
// rely on.
func (c *Client) send(to, from, subject, body string) error {
	cr := c.snapshot()
	if cr.username == "" || cr.password == "" {
		err := &CredentialsNotSetError{
			Missing: []string{"a username", "a password"},
		}
		log.Error().Msg(err.Error())
		return err
	}

	if from == "" {
		from = cr.fromAddress
	}

	rc := c.relay
	rc.Username = cr.username
	rc.Password = cr.password
	s, err := email.NewSender(rc)
	if err != nil {
		return err
	}

	return s.Send(email.Message{
		To:      to,
		From:    from,
		Subject: subject,
		Body:    body,
	})
}

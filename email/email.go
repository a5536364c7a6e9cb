package email

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	gomail "gopkg.in/gomail.v2"
)

// Default relay coordinates. Port 2525 on this relay expects a plain
// connection upgraded with STARTTLS.
const (
	DefaultHost = "mail.smtp2go.com"
	DefaultPort = 2525
)

// RelayConfig describes the SMTP relay a Sender talks to. The zero
// values of Host and Port select the default relay.
type RelayConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// ImplicitTLS dials a TLS connection outright instead of
	// upgrading with STARTTLS after the greeting.
	ImplicitTLS bool
	// InsecureSkipVerify disables certificate verification. Only test
	// servers with self-signed certs should need this.
	InsecureSkipVerify bool
}

// Message is one outbound email. It exists only for the duration of a
// Send call and is discarded afterward.
type Message struct {
	To      string
	From    string
	Subject string
	Body    string
}

// Sender transmits messages to a single SMTP relay.
type Sender struct {
	host   string
	dialer *gomail.Dialer
}

// NewSender validates rc and returns a Sender that we can use to send
// actual email. Returns an error on validation failure.
func NewSender(rc RelayConfig) (*Sender, error) {
	if rc.Username == "" || rc.Password == "" {
		return nil, errors.New("must supply a username and password")
	}

	host := rc.Host
	if host == "" {
		host = DefaultHost
	}
	port := rc.Port
	if port == 0 {
		port = DefaultPort
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("relay port %v is outside the valid range", port)
	}

	return &Sender{
		host: host,
		dialer: &gomail.Dialer{
			Host:     host,
			Port:     port,
			Username: rc.Username,
			Password: rc.Password,
			SSL:      rc.ImplicitTLS,
			TLSConfig: &tls.Config{
				ServerName:         host,
				InsecureSkipVerify: rc.InsecureSkipVerify,
			},
		},
	}, nil
}

// Send transmits msg on a fresh connection to the relay, blocking
// until the relay accepts or rejects it. Each call dials and
// authenticates anew: no pooling, no retry. A lack of an error means
// the relay took responsibility for the message.
func (s *Sender) Send(msg Message) error {
	if msg.To == "" || msg.From == "" {
		return errors.New("must supply a \"to\" address and a \"from\" address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-Id", fmt.Sprintf("<%v@%v>", uuid.New(), s.host))
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		te := &TransportError{err: err}
		log.Error().
			Str("to", msg.To).
			Str("relay", fmt.Sprintf("%v:%v", s.dialer.Host, s.dialer.Port)).
			Msg(te.Error())
		return te
	}
	return nil
}

// TransportError reports a failure during connection, TLS
// negotiation, authentication, or transmission. Its text is sanitized
// so a multi-line SMTP response can't break up a log line.
type TransportError struct {
	err error
}

func (e *TransportError) Error() string {
	return sanitize(e.err.Error())
}

// Unwrap returns the underlying, unsanitized error.
func (e *TransportError) Unwrap() error {
	return e.err
}

// sanitize replaces carriage returns and newlines with spaces.
func sanitize(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

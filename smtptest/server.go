// Package smtptest runs a throwaway SMTP server inside the test
// process so the suite can inspect exactly what a client transmitted:
// the envelope sender and recipients as stated on the wire, plus the
// raw message data.
package smtptest

import (
	"crypto/tls"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/docker/go-units"
	"github.com/emersion/go-smtp"
)

// Delivery is one message the test server accepted.
type Delivery struct {
	// From and Recipients are the envelope as the client stated it
	// with MAIL FROM and RCPT TO, not the message headers.
	From       string
	Recipients []string
	// Body is the raw message data, headers included.
	Body     string
	Received time.Time
}

// Store retains accepted deliveries in memory for comparison against
// a test's expected output. Designed to be goroutine safe since we
// don't know how many connections will hit the server at once.
type Store struct {
	mu         sync.Mutex
	deliveries []Delivery
}

func (st *Store) save(d Delivery) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.deliveries = append(st.deliveries, d)
}

// Deliveries returns all messages accepted at or after epoch
// nanoseconds t. Pass zero for everything.
func (st *Store) Deliveries(t int64) []Delivery {
	st.mu.Lock()
	defer st.mu.Unlock()
	r := make([]Delivery, 0, len(st.deliveries))
	for _, d := range st.deliveries {
		if d.Received.UnixNano() >= t {
			r = append(r, d)
		}
	}
	return r
}

// backend implements smtp.Backend. It hands each authenticated
// connection its own session so concurrent envelopes can't mix.
type backend struct {
	store *Store
}

// Login implements smtp.Backend. Any username/password is fine, since
// we don't want to couple this with specific test configurations.
func (be *backend) Login(_ *smtp.ConnectionState, username string, password string) (smtp.Session, error) {
	if username == "" || password == "" {
		return nil, errors.New("no username or password provided")
	}
	return &session{store: be.store}, nil
}

// AnonymousLogin implements smtp.Backend. Not supported since we want
// to enforce AUTH.
func (be *backend) AnonymousLogin(_ *smtp.ConnectionState) (smtp.Session, error) {
	return nil, smtp.ErrAuthUnsupported
}

// session accumulates one envelope at a time. Implements
// smtp.Session.
type session struct {
	store *Store
	from  string
	rcpts []string
}

// Reset implements smtp.Session.
func (s *session) Reset() {
	s.from = ""
	s.rcpts = nil
}

// Logout implements smtp.Session. No-op here.
func (s *session) Logout() error { return nil }

// Mail implements smtp.Session.
func (s *session) Mail(from string, _ smtp.MailOptions) error {
	s.from = from
	return nil
}

// Rcpt implements smtp.Session.
func (s *session) Rcpt(to string) error {
	s.rcpts = append(s.rcpts, to)
	return nil
}

// Data implements smtp.Session. Saves the finished envelope plus the
// message data for retrieval at the end of the test.
func (s *session) Data(r io.Reader) error {
	// doubtful we'll get a message this big, but we need a limit
	var maxMessageSize int64 = 100 * units.MiB
	buf, err := io.ReadAll(io.LimitReader(r, maxMessageSize))
	if err != nil {
		return err
	}

	s.store.save(Delivery{
		From:       s.from,
		Recipients: append([]string(nil), s.rcpts...),
		Body:       string(buf),
		Received:   time.Now(),
	})
	return nil
}

// InProcessServer is an SMTP server that runs in the same process as
// the test suite, letting us inspect sent messages. You must
// initialize this via NewInProcessServer.
type InProcessServer struct {
	*smtp.Server
	*Store
}

// NewInProcessServer creates an InProcessServer listening on addr
// (e.g. ":2526"), configured to store incoming messages in memory.
// Must provide the paths to the key and cert used for TLS. The cert
// must be a root cert.
func NewInProcessServer(addr string, keypath string, certpath string) *InProcessServer {
	st := &Store{}

	srv := smtp.NewServer(&backend{store: st})
	srv.Addr = addr
	srv.Domain = "localhost"
	srv.AllowInsecureAuth = false // need AUTH over TLS here
	srv.AuthDisabled = false
	srv.Strict = true

	cert, err := tls.LoadX509KeyPair(certpath, keypath)
	// No way to carry on without a cert, so we panic. We're in a test
	// suite, so this should be fine.
	if err != nil {
		panic(err)
	}
	srv.TLSConfig = &tls.Config{
		Certificates: []tls.Certificate{cert},
	}

	return &InProcessServer{
		Server: srv,
		Store:  st,
	}
}

// Start starts the test server. Blocking. Not using
// ListenAndServeTLS: the client should upgrade the connection with
// STARTTLS.
func (is *InProcessServer) Start() error {
	return is.Server.ListenAndServe()
}

// Close shuts down the test server. You must initialize a new
// InProcessServer instead of restarting this one.
func (is *InProcessServer) Close() {
	is.Server.Close()
}

// Address returns the host:port of the test SMTP server.
func (is *InProcessServer) Address() string {
	return is.Server.Domain + is.Server.Addr
}

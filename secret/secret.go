// Package secret obtains sensitive values, such as SMTP passwords,
// without forcing callers to pass them around as plain arguments. A
// Source can be swapped out in tests so nothing ever reads from a
// real terminal during a suite run.
package secret

// Source produces one secret value. Implementations decide where the
// value comes from: a terminal prompt, a fixed string, and so on.
type Source interface {
	Secret() (string, error)
}

// Static returns a fixed secret. Useful in tests and in applications
// that already hold the password.
type Static string

// Secret implements Source.
func (s Static) Secret() (string, error) {
	return string(s), nil
}

package txtmail

import (
	"fmt"
	"strings"
)

// ValidationError reports a missing or malformed argument. It is
// returned before any stored state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %v: %v", e.Field, e.Reason)
}

// CredentialsNotSetError reports a send attempted before the
// credentials it needs were stored. The send never dials the relay.
type CredentialsNotSetError struct {
	Missing []string
}

func (e *CredentialsNotSetError) Error() string {
	return fmt.Sprintf(
		"credentials not set: call SetCredentials with %v first",
		strings.Join(e.Missing, " and "),
	)
}

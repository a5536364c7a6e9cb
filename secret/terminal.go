package secret

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal prompts the operator on the controlling terminal with echo
// disabled, so the typed password never appears on screen.
type Terminal struct {
	// Prompt is written to stderr before reading. A default is used
	// when empty.
	Prompt string
}

// Secret implements Source. It fails when stdin is not a terminal,
// since reading a password from a pipe would block automation while
// echoing nothing.
func (t Terminal) Secret() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New(
			"stdin is not a terminal: supply the password directly instead",
		)
	}

	p := t.Prompt
	if p == "" {
		p = "SMTP password: "
	}
	fmt.Fprint(os.Stderr, p)
	b, err := term.ReadPassword(fd)
	// The operator's return keystroke wasn't echoed either, so end
	// the prompt line ourselves.
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("can't read the password from the terminal: %v", err)
	}
	return string(b), nil
}

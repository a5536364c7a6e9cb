package secret

import "testing"

func TestStatic(t *testing.T) {
	s, err := Static("hunter2").Secret()
	if err != nil {
		t.Fatalf("unexpected error from a static secret: %v", err)
	}
	if s != "hunter2" {
		t.Errorf("expected the static value back but got %q", s)
	}
}

// The test runner's stdin is not a terminal, so the prompt must
// refuse rather than hang waiting for input that can't come.
func TestTerminalRequiresTerminal(t *testing.T) {
	if _, err := (Terminal{}).Secret(); err == nil {
		t.Error("expected an error when stdin is not a terminal")
	}
}

package smtptest

import (
	"fmt"
	"net"
	"time"
)

// WaitReady polls addr with TCP dials until the server accepts a
// connection or timeout passes. Tests start the server on its own
// goroutine, so there's a window where nothing is listening yet.
func WaitReady(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			conn.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("server at %v never became ready: %v", addr, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

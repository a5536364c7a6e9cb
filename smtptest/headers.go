package smtptest

import (
	"bufio"
	"strings"
)

// Header returns the value of the named header in a raw message body,
// or an empty string if the header is absent. The second return
// distinguishes an absent header from one with an empty value.
func Header(body string, name string) (string, bool) {
	sc := bufio.NewScanner(strings.NewReader(body))
	prefix := name + ":"
	for sc.Scan() {
		line := sc.Text()
		// Headers end at the first blank line.
		if line == "" {
			break
		}
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

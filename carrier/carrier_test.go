package carrier

import "testing"

func TestDomain(t *testing.T) {
	testCases := []struct {
		carrier Carrier
		domain  string
	}{
		{ATT, "txt.att.net"},
		{Verizon, "vtext.com"},
		{TMobile, "tmomail.net"},
		{Sprint, "messaging.sprintpcs.com"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.carrier), func(t *testing.T) {
			if d := tc.carrier.Domain(); d != tc.domain {
				t.Errorf(
					"expected domain %v for carrier %v but got %v",
					tc.domain,
					tc.carrier,
					d,
				)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		description   string
		input         string
		shouldBeError bool
	}{
		{
			description: "valid case",
			input:       "Verizon",
		},
		{
			description:   "lowercase is not an exact match",
			input:         "verizon",
			shouldBeError: true,
		},
		{
			description:   "uppercase is not an exact match",
			input:         "VERIZON",
			shouldBeError: true,
		},
		{
			description:   "unknown carrier",
			input:         "AT&T",
			shouldBeError: true,
		},
		{
			description:   "empty string",
			input:         "",
			shouldBeError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			c, err := Parse(tc.input)
			if (err != nil) != tc.shouldBeError {
				t.Fatalf(
					"unexpected error status--wanted %v but got %v with error %v",
					tc.shouldBeError,
					err != nil,
					err,
				)
			}
			if !tc.shouldBeError && string(c) != tc.input {
				t.Errorf("expected carrier %v but got %v", tc.input, c)
			}
		})
	}
}

func TestGatewayAddress(t *testing.T) {
	a := ATT.GatewayAddress("5551234567")
	if a != "5551234567@txt.att.net" {
		t.Errorf("unexpected gateway address %v", a)
	}
}

package ipv6bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHost(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"empty", "", ""},
		{"hostname", "example.com", "example.com"},
		{"hostname with spaces", " nanoleaf.local ", " nanoleaf.local "},
		{"ipv4", "192.0.2.1", "192.0.2.1"},
		{"ipv4 with zone", "192.0.2.1%eth0", "192.0.2.1%eth0"},
		{"ipv6", "2001:db8::1", "[2001:db8::1]"},
		{"ipv6 loopback", "::1", "[::1]"},
		{"ipv4 mapped", "::ffff:192.0.2.1", "[::ffff:192.0.2.1]"},
		{"ipv6 bracketed", "[2001:db8::1]", "[2001:db8::1]"},
		{"ipv6 whitespace", "  2001:db8::1\n", "[2001:db8::1]"},
		{"ipv6 zone", "fe80::1%eth0", "[fe80::1%25eth0]"},
		{"ipv6 bracketed raw zone", "[fe80::1%eth0]", "[fe80::1%25eth0]"},
		{"ipv6 bracketed encoded zone", "[fe80::1%25eth0]", "[fe80::1%25eth0]"},
		{"ipv6 empty zone", "fe80::1%", "[fe80::1]"},
		{"ipv6 bracketed bare encoded separator", "[fe80::1%25]", "[fe80::1]"},
		{"ipv6 bracketed zone starting with 25", "[fe80::1%25250]", "[fe80::1%25250]"},
		{"ipv6 unbracketed zone starting with 25", "fe80::1%250", "[fe80::1%25250]"},
		{"malformed", "2001:db8:::1", "2001:db8:::1"},
		{"host and port", "[2001:db8::1]:16021", "[2001:db8::1]:16021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHost(tt.host))
		})
	}
}

func TestFormatHostIdempotent(t *testing.T) {
	for _, host := range []string{"2001:db8::1", "fe80::1%eth0", "example.com", "192.0.2.1"} {
		once := FormatHost(host)
		assert.Equal(t, once, FormatHost(once), host)
	}
}

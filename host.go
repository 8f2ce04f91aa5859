package ipv6bracket

import (
	"net/netip"
	"strings"
)

// FormatHost returns host in a form that can be embedded in a URL authority.
// IPv6 literals are bracketed and their zone separator is encoded as %25.
// Hostnames, IPv4 literals and anything that fails to parse are returned as given.
func FormatHost(host string) string {
	if host == "" {
		return host
	}

	raw := strings.TrimSpace(host)
	bracketed := strings.HasPrefix(raw, "[")
	raw = strings.Trim(raw, "[]")

	base, zone, hasZone := strings.Cut(raw, "%")
	addr, err := netip.ParseAddr(base)
	if err != nil || !addr.Is6() {
		return host
	}

	// inside brackets the separator is already expected to be encoded
	if bracketed {
		zone = strings.TrimPrefix(zone, "25")
	}

	if hasZone && zone != "" {
		return "[" + base + "%25" + zone + "]"
	}
	return "[" + base + "]"
}

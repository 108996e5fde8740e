package fieldcheck

import (
	"strconv"
	"strings"
)

// ValidEmail reports whether a string is a syntactically acceptable email
// address: an atom-character local part (dots allowed after the first
// character, but never doubled and never immediately before the @), followed
// by a domain of dot-separated alphanumeric-edged labels.
//
// The consecutive-dot rejection spans the whole string, so a domain
// containing ".." fails even though the domain pattern alone would not
// catch it.
func ValidEmail(email string) bool {
	if strings.Contains(email, "..") {
		return false
	}
	// The atom and label classes both exclude @, so any string the pattern
	// accepts has exactly one. Checking the byte before it replaces the
	// lookbehind RE2 lacks.
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || email[at-1] == '.' {
		return false
	}
	return emailRegex.MatchString(email)
}

// ValidURL reports whether a string is a well-formed http, https or ftp URL
// with an optional userinfo segment, port and path. Dotted-quad hosts in the
// private and reserved ranges (10/8, 127/8, 169.254/16, 192.168/16,
// 172.16/12) are rejected; domain hosts must end in a label of two or more
// letters.
func ValidURL(rawURL string) bool {
	m := urlRegex.FindStringSubmatch(rawURL)
	if m == nil {
		return false
	}
	return !isReservedIPv4(m[1])
}

// ValidIPAddress reports whether a string looks like an IP address. IPv6
// matching is comprehensive: full eight-group form, :: compression in any
// position, link-local with a zone suffix, and IPv4-mapped or embedded
// tails.
//
// The IPv4 branch is intentionally loose: it searches for four dot-separated
// digit runs that begin with a valid octet, without anchoring or enforcing
// exactly four groups, so inputs such as "999.999.999.999" pass. Callers
// needing strict dotted-quad parsing should use net/netip instead.
func ValidIPAddress(ip string) bool {
	return ipv6Regex.MatchString(ip) || ipv4LooseRegex.MatchString(ip)
}

// isReservedIPv4 reports whether host is a dotted quad inside a private or
// reserved range. Hosts that are not four decimal octets are never reserved.
func isReservedIPv4(host string) bool {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return false
	}
	octets := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return false
		}
		octets[i] = n
	}
	switch {
	case octets[0] == 10:
		return true
	case octets[0] == 127:
		return true
	case octets[0] == 169 && octets[1] == 254:
		return true
	case octets[0] == 192 && octets[1] == 168:
		return true
	case octets[0] == 172 && octets[1] >= 16 && octets[1] <= 31:
		return true
	}
	return false
}

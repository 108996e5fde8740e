package fieldcheck

import "regexp"

// Pattern fragments shared by the compiled expressions below. Go's regexp
// package (RE2) guarantees linear-time matching, so none of these can be
// driven into pathological backtracking by adversarial input. RE2 has no
// lookaround; where the contract needs one (email local part, URL private
// ranges) the predicate performs an explicit post-check instead.
const (
	// Email local part: one leading character from the atom set, then any
	// mix of atom characters and dots. The no-trailing-dot and no
	// consecutive-dot constraints are enforced outside the pattern.
	emailAtomPattern  = "[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]"
	emailLocalPattern = emailAtomPattern + "+[a-zA-Z0-9!#$%&'*+/=?^_`{|}~.-]*"
	emailLabelPattern = `[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`

	// URL host alternatives. The dotted-quad branch enforces octet ranges
	// (first octet 1-223, last 1-254); domain labels are Unicode-aware
	// beyond ASCII and the final label must be 2+ letters.
	urlIPv4Pattern   = `(?:1\d\d|2[01]\d|22[0-3]|[1-9]\d?)(?:\.(?:1?\d{1,2}|2[0-4]\d|25[0-5])){2}\.(?:[1-9]\d?|1\d\d|2[0-4]\d|25[0-4])`
	urlLabelPattern  = `(?:[a-z0-9\x{00a1}-\x{ffff}]+-?)*[a-z0-9\x{00a1}-\x{ffff}]+`
	urlDomainPattern = urlLabelPattern + `(?:\.` + urlLabelPattern + `)*\.[a-z\x{00a1}-\x{ffff}]{2,}`

	// IPv6 building blocks: one hex group, and the dotted-quad tail used
	// by the IPv4-mapped and IPv4-embedded forms.
	ipv6GroupPattern = `[0-9a-fA-F]{1,4}`
	ipv6OctetPattern = `(?:25[0-5]|(?:2[0-4]|1?[0-9])?[0-9])`
	ipv6QuadPattern  = `(?:` + ipv6OctetPattern + `\.){3}` + ipv6OctetPattern
)

// Pre-compiled expressions; *regexp.Regexp is safe for concurrent use.
var (
	emailRegex = regexp.MustCompile(`^` + emailLocalPattern + `@(?:` + emailLabelPattern + `\.)+` + emailLabelPattern + `$`)

	// Three UK national groupings: 4-, 3- and 2-digit area codes, written
	// either as +44 plus the code or as the code with a leading zero in
	// optional parentheses, with an optional #NNN / #NNNN extension.
	ukPhoneRegex = regexp.MustCompile(`^(?:(?:\+44\s?\d{4}|\(?0\d{4}\)?)\s?\d{3}\s?\d{3}|(?:\+44\s?\d{3}|\(?0\d{3}\)?)\s?\d{3}\s?\d{4}|(?:\+44\s?\d{2}|\(?0\d{2}\)?)\s?\d{4}\s?\d{4})(?:\s?#(?:\d{4}|\d{3}))?$`)

	// General UK postcode shape plus the GIR 0AA special case. Shape only:
	// syntactically plausible but unallocated postcodes still pass.
	ukPostcodeRegex = regexp.MustCompile(`(?i)^(?:[A-Z]{1,2}\d[A-Z\d]?\s?\d[A-Z]{2}|GIR\s?0[A-Z]{2})$`)

	// The single capture group is the host; ValidURL inspects it to reject
	// private and reserved dotted-quad ranges.
	urlRegex = regexp.MustCompile(`(?i)^(?:https?|ftp)://(?:\S+(?::\S*)?@)?(` + urlIPv4Pattern + `|` + urlDomainPattern + `)(?::\d{2,5})?(?:/\S*)?$`)

	ipv6Regex = regexp.MustCompile(`^(?:` +
		`(?:` + ipv6GroupPattern + `:){7}` + ipv6GroupPattern + `|` +
		`(?:` + ipv6GroupPattern + `:){1,7}:|` +
		`(?:` + ipv6GroupPattern + `:){1,6}:` + ipv6GroupPattern + `|` +
		`(?:` + ipv6GroupPattern + `:){1,5}(?::` + ipv6GroupPattern + `){1,2}|` +
		`(?:` + ipv6GroupPattern + `:){1,4}(?::` + ipv6GroupPattern + `){1,3}|` +
		`(?:` + ipv6GroupPattern + `:){1,3}(?::` + ipv6GroupPattern + `){1,4}|` +
		`(?:` + ipv6GroupPattern + `:){1,2}(?::` + ipv6GroupPattern + `){1,5}|` +
		ipv6GroupPattern + `:(?::` + ipv6GroupPattern + `){1,6}|` +
		`:(?:(?::` + ipv6GroupPattern + `){1,7}|:)|` +
		`fe80:(?::[0-9a-fA-F]{0,4}){0,4}%[0-9a-zA-Z]+|` +
		`::(?:ffff(?::0{1,4})?:)?` + ipv6QuadPattern + `|` +
		`(?:` + ipv6GroupPattern + `:){1,4}:` + ipv6QuadPattern +
		`)$`)

	// Deliberately unanchored: accepts any string containing four
	// dot-separated digit runs whose prefixes are valid octets. See
	// ValidIPAddress for why this laxness is kept.
	ipv4LooseRegex = regexp.MustCompile(`(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\d*(?:\.(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\d*){3}`)
)

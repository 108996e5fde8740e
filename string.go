package fieldcheck

import "unicode/utf8"

// Name length bounds, counted in Unicode code points.
const (
	minNameLen = 2
	maxNameLen = 34
)

// ValidAddress reports whether an address field is present: any string with
// at least one code point passes. The input is not trimmed, so a string of
// spaces counts as present.
func ValidAddress(address string) bool {
	return utf8.RuneCountInString(address) > 0
}

// ValidName reports whether a display name is between 2 and 34 code points
// long, inclusive.
func ValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= minNameLen && n <= maxNameLen
}

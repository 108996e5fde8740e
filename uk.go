package fieldcheck

// ValidPhoneNumber reports whether a string is a plausibly grouped UK phone
// number. Three groupings are accepted, one per area-code length:
//
//	4-digit area code: +44 1234 567 890  or  (01234) 567 890
//	3-digit area code: +44 123 456 7890  or  (0123) 456 7890
//	2-digit area code: +44 12 3456 7890  or  (012) 3456 7890
//
// The +44 prefix replaces the leading zero, parentheses and internal spaces
// are optional, and an extension of three or four digits may follow after
// a # sign.
func ValidPhoneNumber(phone string) bool {
	return ukPhoneRegex.MatchString(phone)
}

// ValidPostcode reports whether a string has the shape of a UK postcode,
// case-insensitively: an outward code of one or two letters, a digit and an
// optional alphanumeric, then an inward code of a digit and two letters,
// with an optional separating space. The special GIR 0AA postcode is also
// accepted. This is a shape check, not a registry lookup, so unallocated
// codes that fit the shape pass.
func ValidPostcode(postcode string) bool {
	return ukPostcodeRegex.MatchString(postcode)
}

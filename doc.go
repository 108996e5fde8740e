// Package fieldcheck provides stateless boolean predicates for validating
// common user-submitted form fields: postal address presence, email syntax,
// display-name length, UK phone numbers, UK postcodes, URLs, and IP
// addresses.
//
// Every predicate takes a single string and reports whether it satisfies the
// format rule. There is no normalisation, no error reporting beyond the
// boolean, and no I/O: malformed input is simply false, never a panic or an
// error value. The functions are independent of each other and referentially
// transparent, so results for equal inputs are always equal.
//
// # Architecture
//
// Each source file groups one family of checks (`string.go` for the length
// checks, `format.go` for email/URL/IP syntax, `uk.go` for the UK-specific
// formats). All patterns live in `regex.go` and are compiled once at package
// initialisation; there is no other package state, so every predicate is
// goroutine-safe and allocation-light.
//
// # Usage
//
//	ok := fieldcheck.ValidEmail(form.Email) &&
//		fieldcheck.ValidName(form.DisplayName) &&
//		fieldcheck.ValidPostcode(form.Postcode)
//	if !ok {
//		// reject the submission
//	}
//
// # Matching semantics
//
// The checks are format contracts, not truth oracles. ValidPostcode accepts
// any string of the right shape, including unallocated postcodes; ValidURL
// rejects dotted-quad hosts in private and reserved ranges even when
// well-formed; the IPv4 branch of ValidIPAddress is deliberately loose and
// accepts some malformed dotted strings (see its doc comment). Because
// matching uses Go's RE2-based regexp engine, worst-case time is linear in
// the input, so attacker-controlled strings cannot trigger catastrophic
// backtracking.
package fieldcheck

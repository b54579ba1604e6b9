// Package word provides the word-boundary predicate used by whole-word
// matching.
//
// A "word" byte is exactly [A-Za-z0-9_]; every other byte value, including
// all non-ASCII bytes, is a non-word byte. Defining the class this way (as
// a complement rather than an enumerated punctuation list) covers the whole
// byte space, so the predicate is total over arbitrary binary input.
package word

// IsWordByte reports whether b is an ASCII letter, digit, or underscore.
//
//go:inline
func IsWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// IsBoundary reports whether position i in data is a word boundary.
//
// A position is a boundary if it sits at the start or end of data, or if
// the word-ness of the byte immediately before it differs from the
// word-ness of the byte immediately after it.
func IsBoundary(data []byte, i int) bool {
	if i <= 0 || i >= len(data) {
		return true
	}
	return IsWordByte(data[i-1]) != IsWordByte(data[i])
}

// Passes reports whether the half-open range [start, end) of data begins
// and ends on word boundaries. It is the whole-word post-filter: matches
// for which Passes returns false are discarded.
func Passes(data []byte, start, end int) bool {
	return IsBoundary(data, start) && IsBoundary(data, end)
}

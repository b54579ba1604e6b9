package voluta

// Match is one pattern occurrence in an input: the half-open byte range
// [Start, End) and the pattern that matched there, in its original
// spelling as passed to the constructor (never case-folded). Offsets are
// 0-based byte positions in the scanned input.
type Match struct {
	Start   int
	End     int
	Pattern string
}

// LineMatch is one pattern occurrence found by line-oriented matching.
// Line is 1-based; Start and End are byte offsets relative to the start of
// that line, End exclusive.
type LineMatch struct {
	Line    int
	Start   int
	End     int
	Pattern string
}

// Package automaton implements the Aho-Corasick automaton at the core of
// voluta's multi-pattern matching.
//
// The automaton is built once from a frozen pattern set and is immutable
// afterwards: scanning performs pure lookups, so a single automaton may be
// shared by any number of goroutines without synchronization.
//
// Construction builds a trie over the pattern bytes, computes failure links
// with a breadth-first traversal, and then flattens the goto/failure
// functions into a dense transition table (one 256-entry row per state).
// Every byte value therefore has a defined transition from every state, and
// scanning is a single table lookup per input byte with no failure-link
// chasing at match time.
//
// Basic usage:
//
//	auto, err := automaton.NewBuilder().
//		AddString("alfa").
//		AddString("bravo").
//		Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range auto.FindAll(data) {
//	    fmt.Println(m.Start, m.End, m.Pattern)
//	}
package automaton

// StateID uniquely identifies an automaton state.
// This is a 32-bit unsigned integer for compact representation; states are
// stored in an arena and addressed by index, never by pointer, so the
// failure-link back-edges to the root introduce no ownership cycles.
type StateID uint32

// PatternID identifies a pattern by its position in the automaton's
// filtered pattern list.
type PatternID uint32

// rootState is the start state. It has no incoming failure link.
const rootState StateID = 0

// Match is a single pattern occurrence: the half-open byte range
// [Start, End) and the pattern that matched there. Offsets always refer to
// the original, un-folded input bytes.
type Match struct {
	Start   int
	End     int
	Pattern PatternID
}

// Automaton is an immutable Aho-Corasick automaton over a fixed pattern
// set. Zero values are not usable; construct with a Builder.
//
// All scanning methods are safe for concurrent use.
type Automaton struct {
	// next is the dense transition table: next[int(s)<<8|int(b)] is the
	// successor of state s on input byte b. For case-insensitive automata
	// the rows already alias 'A'..'Z' onto 'a'..'z', so scanning never
	// folds input bytes explicitly.
	next []StateID

	// emit lists, per state, every pattern that ends when the state is
	// reached: the state's own terminals followed by terminals inherited
	// through its failure chain. Invariant: emit[s][0] has the greatest
	// length of any entry (a state's own pattern spans the whole path to
	// it; inherited ones are proper suffixes).
	emit [][]PatternID

	patterns [][]byte // filtered, original (un-folded) bytes, by PatternID
	lens     []int    // lens[p] == len(patterns[p])
	maxLen   int

	caseInsensitive bool
}

// NumStates returns the number of states in the automaton, including the
// root.
func (a *Automaton) NumStates() int {
	return len(a.emit)
}

// NumPatterns returns the number of patterns in the automaton after
// empty/duplicate filtering.
func (a *Automaton) NumPatterns() int {
	return len(a.patterns)
}

// Pattern returns the original bytes of pattern p.
// The returned slice must not be modified.
func (a *Automaton) Pattern(p PatternID) []byte {
	return a.patterns[p]
}

// PatternLen returns the byte length of pattern p.
func (a *Automaton) PatternLen(p PatternID) int {
	return a.lens[p]
}

// MaxPatternLen returns the length of the longest pattern. Chunked scanning
// derives its look-ahead margin (MaxPatternLen-1) from this.
func (a *Automaton) MaxPatternLen() int {
	return a.maxLen
}

// CaseInsensitive reports whether the automaton folds ASCII case.
func (a *Automaton) CaseInsensitive() bool {
	return a.caseInsensitive
}

// FindAll returns every occurrence of every pattern in data, including
// overlapping ones. Results are ordered by end offset ascending, and by
// start offset ascending among occurrences sharing an end.
//
// No duplicate (Start, End, Pattern) triple is ever produced: each
// occurrence is emitted exactly once, at the position where it ends.
func (a *Automaton) FindAll(data []byte) []Match {
	var out []Match
	s := rootState
	for i := 0; i < len(data); i++ {
		s = a.next[int(s)<<8|int(data[i])]
		for _, p := range a.emit[s] {
			end := i + 1
			out = append(out, Match{Start: end - a.lens[p], End: end, Pattern: p})
		}
	}
	return out
}

// FindNonOverlapping returns a non-overlapping subset of the occurrences in
// data: repeatedly take the occurrence with the earliest end (preferring
// the longest pattern ending there), then resume from the root immediately
// after it, so no input byte is consumed by two matches.
//
// The result is sorted by start offset and its ranges are pairwise
// disjoint.
func (a *Automaton) FindNonOverlapping(data []byte) []Match {
	var out []Match
	s := rootState
	for i := 0; i < len(data); i++ {
		s = a.next[int(s)<<8|int(data[i])]
		if len(a.emit[s]) == 0 {
			continue
		}
		p := a.emit[s][0] // longest pattern ending here
		end := i + 1
		out = append(out, Match{Start: end - a.lens[p], End: end, Pattern: p})
		s = rootState
	}
	return out
}

// IsMatch reports whether any pattern occurs anywhere in data. It stops at
// the first hit, so it is cheaper than FindAll when only existence matters.
func (a *Automaton) IsMatch(data []byte) bool {
	s := rootState
	for i := 0; i < len(data); i++ {
		s = a.next[int(s)<<8|int(data[i])]
		if len(a.emit[s]) > 0 {
			return true
		}
	}
	return false
}

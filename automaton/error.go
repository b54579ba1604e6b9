package automaton

import "errors"

// Common automaton errors
var (
	// ErrNoPatterns indicates the pattern set was empty after discarding
	// empty and duplicate entries. An automaton cannot be built without at
	// least one non-empty pattern.
	ErrNoPatterns = errors.New("pattern set is empty after filtering")
)

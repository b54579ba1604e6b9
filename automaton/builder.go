package automaton

import (
	"github.com/trustshield/voluta/internal/conv"
)

// Builder constructs an Automaton from a set of literal patterns.
//
// Patterns are added with AddPattern/AddString; Build filters out empty and
// duplicate entries, assigns PatternIDs in insertion order over the
// survivors, and compiles the automaton. A Builder is single-use: Build
// snapshots whatever was added and the Builder should be discarded.
//
// Mirrors the construction order of the filtering in TextMatcher: callers
// that need the filtered pattern list can recover it from the automaton via
// NumPatterns/Pattern.
type Builder struct {
	patterns        [][]byte
	caseInsensitive bool
}

// NewBuilder returns an empty Builder with case-sensitive matching.
func NewBuilder() *Builder {
	return &Builder{}
}

// CaseInsensitive sets ASCII-range case folding. When enabled, pattern and
// input bytes in 'A'..'Z' are treated as their lowercase counterparts;
// non-ASCII bytes are never folded. Returns the Builder for chaining.
func (b *Builder) CaseInsensitive(v bool) *Builder {
	b.caseInsensitive = v
	return b
}

// AddPattern adds one literal pattern. The bytes are copied; the caller may
// reuse the slice. Returns the Builder for chaining.
func (b *Builder) AddPattern(p []byte) *Builder {
	cp := make([]byte, len(p))
	copy(cp, p)
	b.patterns = append(b.patterns, cp)
	return b
}

// AddString adds one literal pattern given as a string.
// Returns the Builder for chaining.
func (b *Builder) AddString(s string) *Builder {
	b.patterns = append(b.patterns, []byte(s))
	return b
}

// Build compiles the automaton.
//
// Empty patterns are discarded, and exact duplicates collapse to their
// first occurrence. Returns ErrNoPatterns if nothing survives the
// filtering.
func (b *Builder) Build() (*Automaton, error) {
	patterns := filterPatterns(b.patterns)
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	t := &trie{
		children: [][256]int32{newTrieRow()},
		own:      [][]PatternID{nil},
	}

	lens := make([]int, len(patterns))
	maxLen := 0
	for i, p := range patterns {
		pid := PatternID(conv.IntToUint32(i))
		t.insert(p, pid, b.caseInsensitive)
		lens[i] = len(p)
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}

	a := &Automaton{
		patterns:        patterns,
		lens:            lens,
		maxLen:          maxLen,
		caseInsensitive: b.caseInsensitive,
	}
	t.compile(a)
	return a, nil
}

// filterPatterns drops empty patterns and exact (pre-folding) duplicates,
// preserving first-occurrence order.
func filterPatterns(in [][]byte) [][]byte {
	seen := make(map[string]struct{}, len(in))
	var out [][]byte
	for _, p := range in {
		if len(p) == 0 {
			continue
		}
		if _, dup := seen[string(p)]; dup {
			continue
		}
		seen[string(p)] = struct{}{}
		out = append(out, p)
	}
	return out
}

// trie is the intermediate construction arena. States are rows indexed by
// StateID; children entries are -1 where no edge exists. The arena form is
// discarded once compile flattens it into the dense transition table.
type trie struct {
	children [][256]int32
	own      [][]PatternID
}

func newTrieRow() [256]int32 {
	var row [256]int32
	for i := range row {
		row[i] = -1
	}
	return row
}

// insert walks p from the root, creating states as needed, and records p's
// PatternID as a terminal of the final state. Pattern bytes are folded
// here when the automaton is case-insensitive, so the trie only ever
// carries lowercase edges for ASCII letters.
func (t *trie) insert(p []byte, pid PatternID, fold bool) {
	cur := int32(rootState)
	for _, c := range p {
		if fold {
			c = foldASCII(c)
		}
		nxt := t.children[cur][c]
		if nxt < 0 {
			nxt = int32(conv.IntToUint32(len(t.children)))
			t.children = append(t.children, newTrieRow())
			t.own = append(t.own, nil)
			t.children[cur][c] = nxt
		}
		cur = nxt
	}
	t.own[cur] = append(t.own[cur], pid)
}

// compile computes failure links breadth-first, merges terminal sets along
// the failure chains, and flattens everything into a's dense transition
// table. Processing states in BFS order guarantees that a state's failure
// target (always shallower) has a complete row and emit list before the
// state itself is handled.
func (t *trie) compile(a *Automaton) {
	n := len(t.children)
	a.next = make([]StateID, n*256)
	a.emit = make([][]PatternID, n)

	fail := make([]StateID, n)
	queue := make([]StateID, 0, n)

	// Root row: direct children, every other byte loops on the root.
	for b := 0; b < 256; b++ {
		if c := t.children[rootState][b]; c >= 0 {
			a.next[b] = StateID(c)
			fail[c] = rootState
			queue = append(queue, StateID(c))
		} else {
			a.next[b] = rootState
		}
	}
	a.emit[rootState] = t.own[rootState]

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		a.emit[s] = mergeEmit(t.own[s], a.emit[fail[s]])

		row := int(s) << 8
		failRow := int(fail[s]) << 8
		for b := 0; b < 256; b++ {
			if c := t.children[s][b]; c >= 0 {
				a.next[row|b] = StateID(c)
				fail[c] = a.next[failRow|b]
				queue = append(queue, StateID(c))
			} else {
				a.next[row|b] = a.next[failRow|b]
			}
		}
	}

	if a.caseInsensitive {
		// Alias uppercase columns onto their folded counterparts so the
		// scan loop never folds input bytes.
		for s := 0; s < n; s++ {
			row := s << 8
			for b := byte('A'); b <= 'Z'; b++ {
				a.next[row|int(b)] = a.next[row|int(b+('a'-'A'))]
			}
		}
	}
}

// mergeEmit concatenates a state's own terminals with the terminals
// inherited from its failure target. Own terminals come first: they span
// the whole path to the state and are therefore the longest, preserving the
// emit[s][0]-is-longest invariant relied on by FindNonOverlapping.
func mergeEmit(own, inherited []PatternID) []PatternID {
	if len(inherited) == 0 {
		return own
	}
	out := make([]PatternID, 0, len(own)+len(inherited))
	out = append(out, own...)
	out = append(out, inherited...)
	return out
}

// foldASCII lowercases b when it is an ASCII uppercase letter and returns
// every other byte unchanged.
//
//go:inline
func foldASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

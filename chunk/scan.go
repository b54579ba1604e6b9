package chunk

import (
	"github.com/trustshield/voluta/automaton"
	"github.com/trustshield/voluta/internal/word"
)

// ScanChunk scans chunk c of data and returns the occurrences c owns,
// translated to absolute offsets.
//
// The automaton runs over c's read region [Start, ReadEnd), so matches
// that begin inside the chunk but end past its nominal boundary are found
// whole. Ownership is decided by start offset: a match starting at or
// after c.End belongs to the next chunk, which will rediscover it from its
// own nominal start, so it is dropped here. A match starting before c.End
// is kept even when it extends past it; no later chunk can start a
// traversal early enough to re-find it.
//
// The whole-word filter is applied here only in overlapping mode, where
// data supplies full context on both sides of every boundary check. In
// non-overlapping mode filtering must wait until after the reconciler's
// selection pass (a rejected occurrence still consumes its bytes), so the
// scanner keeps everything.
func ScanChunk(auto *automaton.Automaton, data []byte, c Chunk, cfg Config) []automaton.Match {
	found := auto.FindAll(data[c.Start:c.ReadEnd])

	out := found[:0]
	for _, m := range found {
		m.Start += c.Start
		m.End += c.Start
		if m.Start >= c.End {
			continue
		}
		if cfg.WholeWord && cfg.Overlapping && !word.Passes(data, m.Start, m.End) {
			continue
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

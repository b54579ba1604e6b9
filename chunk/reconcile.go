package chunk

import (
	"sort"

	"github.com/trustshield/voluta/automaton"
	"github.com/trustshield/voluta/internal/word"
)

// Merge concatenates per-chunk match lists in chunk-index order. Parallel
// workers fill disjoint slots of the outer slice, so concatenation here
// restores the deterministic chunk order no matter how scanning was
// scheduled.
func Merge(lists [][]automaton.Match) []automaton.Match {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	if total == 0 {
		return nil
	}
	out := make([]automaton.Match, 0, total)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Reconcile turns merged per-chunk occurrences into the final match
// sequence for data.
//
// Steps, in order: defensive deduplication (the ownership rule already
// guarantees uniqueness, this enforces it), the greedy non-overlapping
// selection when configured, the deferred whole-word filter for
// non-overlapping mode, and the final (start, end, pattern) sort that
// makes output independent of scan scheduling.
func Reconcile(ms []automaton.Match, data []byte, cfg Config) []automaton.Match {
	ms = dedup(ms)
	if !cfg.Overlapping {
		ms = selectNonOverlapping(ms)
		if cfg.WholeWord {
			kept := ms[:0]
			for _, m := range ms {
				if word.Passes(data, m.Start, m.End) {
					kept = append(kept, m)
				}
			}
			ms = kept
		}
	}
	sortByPosition(ms)
	if len(ms) == 0 {
		return nil
	}
	return ms
}

// dedup removes duplicate (start, end, pattern) triples, keeping first
// occurrences.
func dedup(ms []automaton.Match) []automaton.Match {
	if len(ms) < 2 {
		return ms
	}
	seen := make(map[automaton.Match]struct{}, len(ms))
	out := ms[:0]
	for _, m := range ms {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// selectNonOverlapping reduces an occurrence set to the non-overlapping
// subset a single whole-input scan would emit: repeatedly take the
// occurrence with the earliest end (longest first among equal ends), then
// discard everything that begins before it finishes.
//
// Running this globally over the merged occurrence set, rather than inside
// each chunk, is what makes chunked non-overlapping scanning equal the
// single-scan result for every chunk size: the per-chunk skip state would
// otherwise depend on matches in earlier chunks.
func selectNonOverlapping(ms []automaton.Match) []automaton.Match {
	if len(ms) < 2 {
		return ms
	}
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].End != ms[j].End {
			return ms[i].End < ms[j].End
		}
		if ms[i].Start != ms[j].Start {
			return ms[i].Start < ms[j].Start
		}
		return ms[i].Pattern < ms[j].Pattern
	})
	out := ms[:0]
	nextStart := 0
	for _, m := range ms {
		if m.Start < nextStart {
			continue
		}
		out = append(out, m)
		nextStart = m.End
	}
	return out
}

// sortByPosition orders matches by (start, end, pattern id) ascending, the
// ordering guaranteed to callers.
func sortByPosition(ms []automaton.Match) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Start != ms[j].Start {
			return ms[i].Start < ms[j].Start
		}
		if ms[i].End != ms[j].End {
			return ms[i].End < ms[j].End
		}
		return ms[i].Pattern < ms[j].Pattern
	})
}

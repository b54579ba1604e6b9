package chunk

import (
	"errors"
	"io"

	"github.com/trustshield/voluta/automaton"
	"github.com/trustshield/voluta/internal/word"
)

// streamMatch is an occurrence found in a stream window, with its
// word-boundary verdict captured while the surrounding bytes were still
// buffered.
type streamMatch struct {
	m    automaton.Match
	word bool
}

// ScanReader scans a sequential source with the same boundary discipline
// as the random-access path, for inputs that cannot be memory mapped
// (pipes, sockets).
//
// Reads are buffered in windows of roughly bufSize bytes. Between windows
// the scanner carries the trailing maxPatternLen+1 bytes: enough that a
// match straddling a read boundary is re-anchored whole in the next
// window, with one byte to spare so the word-boundary predicate always
// sees real context. A match is emitted by the first window that
// buffers at least one byte past its end (or at end of stream), and the
// emission watermark advances monotonically, so every occurrence is
// reported exactly once.
//
// Errors from r are returned as-is with no partial results.
func ScanReader(auto *automaton.Automaton, r io.Reader, cfg Config, bufSize int) ([]automaton.Match, error) {
	if bufSize < 1 {
		bufSize = 1
	}
	carry := auto.MaxPatternLen() + 1

	var (
		window []byte
		occs   []streamMatch
		base   int // absolute offset of window[0]
		read   int // total bytes consumed from r
		mark   int // occurrences ending at or before mark are already emitted
	)

	buf := make([]byte, bufSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			window = append(window, buf[:n]...)
			read += n

			for _, m := range auto.FindAll(window) {
				abs := automaton.Match{
					Start:   base + m.Start,
					End:     base + m.End,
					Pattern: m.Pattern,
				}
				if abs.End <= mark {
					continue // emitted by an earlier window
				}
				if abs.End >= read {
					continue // after-context not buffered yet; next window owns it
				}
				occs = append(occs, streamMatch{
					m:    abs,
					word: word.Passes(window, m.Start, m.End),
				})
			}
			mark = read - 1

			if keep := len(window); keep > carry {
				base += keep - carry
				copy(window, window[keep-carry:])
				window = window[:carry]
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}

	// End of stream: matches ending at the final byte were held back for
	// after-context that will never arrive. The carried window still
	// contains them whole.
	for _, m := range auto.FindAll(window) {
		abs := automaton.Match{
			Start:   base + m.Start,
			End:     base + m.End,
			Pattern: m.Pattern,
		}
		if abs.End <= mark {
			continue
		}
		occs = append(occs, streamMatch{
			m:    abs,
			word: word.Passes(window, m.Start, m.End),
		})
	}

	return resolveStream(occs, cfg), nil
}

// resolveStream applies the reconciliation steps to stream occurrences:
// dedup, non-overlapping selection, the word filter using the verdicts
// recorded at scan time, and the final position sort.
func resolveStream(occs []streamMatch, cfg Config) []automaton.Match {
	if len(occs) == 0 {
		return nil
	}

	wordOK := make(map[automaton.Match]bool, len(occs))
	ms := make([]automaton.Match, 0, len(occs))
	for _, o := range occs {
		if _, dup := wordOK[o.m]; dup {
			continue
		}
		wordOK[o.m] = o.word
		ms = append(ms, o.m)
	}

	if !cfg.Overlapping {
		ms = selectNonOverlapping(ms)
	}
	if cfg.WholeWord {
		kept := ms[:0]
		for _, m := range ms {
			if wordOK[m] {
				kept = append(kept, m)
			}
		}
		ms = kept
	}
	sortByPosition(ms)
	if len(ms) == 0 {
		return nil
	}
	return ms
}

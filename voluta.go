// Package voluta is a multi-pattern substring search engine: given a set
// of literal patterns, it finds every occurrence of any pattern in a byte
// stream, reporting each match's byte offset range and which pattern
// matched.
//
// voluta scales from small in-memory buffers to multi-gigabyte files:
//   - Aho-Corasick automaton, built once and shared lock-free by all scans
//   - Case-insensitive (ASCII), whole-word, and overlapping match modes
//   - Memory-mapped file scanning, chunked with optional parallelism
//   - Buffered stream scanning for sources that cannot be mapped
//
// Basic usage:
//
//	matcher, err := voluta.New([]string{"alfa", "bravo"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range matcher.MatchBytes([]byte("alfa and bravo")) {
//	    fmt.Println(m.Start, m.End, m.Pattern)
//	}
//
// Custom modes:
//
//	opts := voluta.DefaultOptions()
//	opts.WholeWord = true
//	matcher, err := voluta.NewWithOptions([]string{"cat"}, opts)
//
// Large files:
//
//	matches, err := matcher.MatchFileMmapParallel("big.log", 0, 0) // defaults
//
// Results are always ordered by (start, end, pattern) regardless of chunk
// size or thread count, and scanning the same input twice yields identical
// results. A TextMatcher is immutable after construction and safe for
// concurrent use.
package voluta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/trustshield/voluta/automaton"
	"github.com/trustshield/voluta/chunk"
	"github.com/trustshield/voluta/source"
)

// DefaultChunkSize is the nominal chunk size used by the file scanning
// methods when the caller passes a non-positive size.
const DefaultChunkSize = 8 << 20 // 8 MiB

// ErrNoPatterns is returned by the constructors when the pattern set is
// empty after discarding empty and duplicate entries.
var ErrNoPatterns = automaton.ErrNoPatterns

// Options selects a TextMatcher's matching modes. All three are fixed at
// construction; chunk size and worker count are per-call parameters, not
// matcher state.
type Options struct {
	// Overlapping reports every occurrence of every pattern, including
	// ones that share bytes. When false, matching is non-overlapping: the
	// earliest-ending occurrence wins (longest first among equal ends)
	// and scanning resumes right after it, so reported ranges never
	// intersect.
	// Default: true
	Overlapping bool

	// CaseInsensitive folds ASCII letters in both patterns and input
	// before matching. Only ASCII is folded; non-ASCII bytes pass through
	// unchanged. Reported offsets and pattern strings always refer to the
	// original, un-folded bytes.
	// Default: true
	CaseInsensitive bool

	// WholeWord keeps only matches that begin and end on word boundaries,
	// where word bytes are ASCII letters, digits, and underscore.
	// Default: false
	WholeWord bool
}

// DefaultOptions returns the default matching modes: overlapping and
// case-insensitive matching with whole-word filtering off.
func DefaultOptions() Options {
	return Options{Overlapping: true, CaseInsensitive: true}
}

// TextMatcher matches a frozen set of literal patterns against inputs.
//
// The pattern set and modes are fixed at construction; every scan method
// may then be called any number of times, from any number of goroutines,
// on the same instance. Each call returns a fresh result slice owned by
// the caller.
type TextMatcher struct {
	auto     *automaton.Automaton
	patterns []string // filtered patterns, indexed by automaton PatternID
	opts     Options
	cfg      chunk.Config
}

// New builds a TextMatcher with DefaultOptions.
//
// Empty patterns are discarded and exact duplicates collapse to their
// first occurrence; returns ErrNoPatterns if nothing survives.
func New(patterns []string) (*TextMatcher, error) {
	return NewWithOptions(patterns, DefaultOptions())
}

// NewWithOptions builds a TextMatcher with explicit matching modes.
// See New for pattern filtering.
func NewWithOptions(patterns []string, opts Options) (*TextMatcher, error) {
	b := automaton.NewBuilder().CaseInsensitive(opts.CaseInsensitive)
	for _, p := range patterns {
		b.AddString(p)
	}
	auto, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("voluta: %w", err)
	}

	kept := make([]string, auto.NumPatterns())
	for i := range kept {
		kept[i] = string(auto.Pattern(automaton.PatternID(i)))
	}
	return &TextMatcher{
		auto:     auto,
		patterns: kept,
		opts:     opts,
		cfg: chunk.Config{
			Overlapping: opts.Overlapping,
			WholeWord:   opts.WholeWord,
		},
	}, nil
}

// Options returns the matcher's modes.
func (m *TextMatcher) Options() Options { return m.opts }

// PatternCount returns the number of patterns after filtering.
func (m *TextMatcher) PatternCount() int { return len(m.patterns) }

// Patterns returns the filtered pattern set in PatternID order.
func (m *TextMatcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	copy(out, m.patterns)
	return out
}

// MatchBytes scans an in-memory buffer and returns all matches ordered by
// (start, end, pattern). This is the single-chunk path: the whole buffer
// is one implicit chunk.
func (m *TextMatcher) MatchBytes(data []byte) []Match {
	return m.toMatches(chunk.Run(m.auto, data, m.cfg, len(data), 1))
}

// MatchString scans a string. Equivalent to MatchBytes on its bytes.
func (m *TextMatcher) MatchString(s string) []Match {
	return m.MatchBytes([]byte(s))
}

// IsMatch reports whether data contains at least one match under the
// matcher's modes. Without whole-word filtering it stops at the first
// automaton hit; with it, a full scan is needed since the first hit may be
// filtered away.
func (m *TextMatcher) IsMatch(data []byte) bool {
	if !m.opts.WholeWord {
		return m.auto.IsMatch(data)
	}
	return len(m.MatchBytes(data)) > 0
}

// MatchFile scans a file line by line. Each line (delimited by '\n') is
// scanned as a complete standalone unit, so patterns never match across
// lines and there is no chunk-boundary problem in this mode. Line numbers
// are 1-based and offsets are relative to the start of the line.
func (m *TextMatcher) MatchFile(path string) ([]LineMatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("voluta: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var out []LineMatch
	line := 0
	for {
		data, err := r.ReadBytes('\n')
		if len(data) > 0 {
			line++
			for _, am := range chunk.Run(m.auto, data, m.cfg, len(data), 1) {
				out = append(out, LineMatch{
					Line:    line,
					Start:   am.Start,
					End:     am.End,
					Pattern: m.patterns[am.Pattern],
				})
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("voluta: read %s: %w", path, err)
		}
	}
	return out, nil
}

// MatchFileMmap scans a memory-mapped file in sequential chunks of
// chunkSize bytes (DefaultChunkSize when <= 0). Matches that straddle a
// chunk boundary are found exactly once; the result is identical to
// scanning the whole file as one buffer.
func (m *TextMatcher) MatchFileMmap(path string, chunkSize int) ([]Match, error) {
	return m.matchMmap(path, chunkSize, 1)
}

// MatchFileMmapParallel scans a memory-mapped file with workers goroutines
// (the core count when <= 0) over chunks of chunkSize bytes
// (DefaultChunkSize when <= 0). The result set and its order are identical
// to the sequential scan for every worker count.
func (m *TextMatcher) MatchFileMmapParallel(path string, chunkSize, workers int) ([]Match, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return m.matchMmap(path, chunkSize, workers)
}

func (m *TextMatcher) matchMmap(path string, chunkSize, workers int) ([]Match, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	src, err := source.OpenMmap(path)
	if err != nil {
		return nil, fmt.Errorf("voluta: %w", err)
	}
	defer src.Close()
	return m.toMatches(chunk.Run(m.auto, src.Bytes(), m.cfg, chunkSize, workers)), nil
}

// MatchFileStream scans a file through buffered sequential reads instead
// of memory mapping, with the same boundary discipline as the chunked
// paths. Useful when mapping is undesirable; for arbitrary io.Reader
// sources see MatchStream.
func (m *TextMatcher) MatchFileStream(path string, bufSize int) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("voluta: %w", err)
	}
	defer f.Close()
	return m.MatchStream(f, bufSize)
}

// MatchStream scans any sequential source (pipe, socket, decompressor) in
// buffers of bufSize bytes (DefaultChunkSize when <= 0). Offsets are
// relative to the start of the stream. No partial results are returned on
// error.
func (m *TextMatcher) MatchStream(r io.Reader, bufSize int) ([]Match, error) {
	if bufSize <= 0 {
		bufSize = DefaultChunkSize
	}
	ms, err := chunk.ScanReader(m.auto, r, m.cfg, bufSize)
	if err != nil {
		return nil, fmt.Errorf("voluta: stream: %w", err)
	}
	return m.toMatches(ms), nil
}

// toMatches resolves automaton pattern ids to their original strings.
func (m *TextMatcher) toMatches(ms []automaton.Match) []Match {
	if len(ms) == 0 {
		return nil
	}
	out := make([]Match, len(ms))
	for i, am := range ms {
		out[i] = Match{Start: am.Start, End: am.End, Pattern: m.patterns[am.Pattern]}
	}
	return out
}

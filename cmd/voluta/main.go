// Command voluta is a grep-like driver for the voluta matching engine: it
// searches one or more literal patterns in a file or on stdin and prints
// the matches with their byte offsets.
//
// Usage:
//
//	voluta -e pattern [-e pattern ...] [flags] [file]
//	voluta [flags] pattern [file]
//
// With a file argument the file is scanned through the memory-mapped
// chunked path (parallel when -threads != 1); without one, stdin is
// scanned as a stream. -lines switches file scanning to line-oriented
// matching.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/trustshield/voluta"
)

type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }

func (p *patternList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var patterns patternList
	flag.Var(&patterns, "e", "pattern to search for (repeatable)")
	caseSensitive := flag.Bool("case", false, "match case sensitively")
	wholeWord := flag.Bool("w", false, "match whole words only")
	noOverlap := flag.Bool("no-overlap", false, "report non-overlapping matches only")
	lines := flag.Bool("lines", false, "line-oriented matching (file input only)")
	countOnly := flag.Bool("count", false, "print only the match count")
	chunkSize := flag.Int("chunk", 0, "chunk size in bytes (0 = default 8 MiB)")
	threads := flag.Int("threads", 0, "worker threads for file scans (0 = all cores)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	args := flag.Args()
	if len(patterns) == 0 && len(args) > 0 {
		// grep convention: the first positional argument is the pattern.
		patterns = append(patterns, args[0])
		args = args[1:]
	}
	if len(patterns) == 0 {
		logger.Error("no patterns given; use -e or a positional pattern")
		os.Exit(2)
	}

	opts := voluta.Options{
		Overlapping:     !*noOverlap,
		CaseInsensitive: !*caseSensitive,
		WholeWord:       *wholeWord,
	}
	matcher, err := voluta.NewWithOptions(patterns, opts)
	if err != nil {
		logger.Error("invalid pattern set", "error", err)
		os.Exit(2)
	}

	switch {
	case len(args) > 0 && *lines:
		ms, err := matcher.MatchFile(args[0])
		if err != nil {
			logger.Error("scan failed", "file", args[0], "error", err)
			os.Exit(1)
		}
		if *countOnly {
			fmt.Println(len(ms))
			return
		}
		for _, m := range ms {
			fmt.Printf("%d:%d-%d\t%s\n", m.Line, m.Start, m.End, m.Pattern)
		}
		exitCode(len(ms))

	case len(args) > 0:
		ms, err := matcher.MatchFileMmapParallel(args[0], *chunkSize, *threads)
		if err != nil {
			logger.Error("scan failed", "file", args[0], "error", err)
			os.Exit(1)
		}
		printMatches(ms, *countOnly)

	default:
		ms, err := matcher.MatchStream(os.Stdin, *chunkSize)
		if err != nil {
			logger.Error("scan failed", "error", err)
			os.Exit(1)
		}
		printMatches(ms, *countOnly)
	}
}

func printMatches(ms []voluta.Match, countOnly bool) {
	if countOnly {
		fmt.Println(len(ms))
		return
	}
	for _, m := range ms {
		fmt.Printf("%d-%d\t%s\n", m.Start, m.End, m.Pattern)
	}
	exitCode(len(ms))
}

// exitCode follows grep: status 1 when nothing matched.
func exitCode(n int) {
	if n == 0 {
		os.Exit(1)
	}
}

package chunk

import (
	"golang.org/x/sync/errgroup"

	"github.com/trustshield/voluta/automaton"
)

// Run scans data with auto and returns the final ordered match sequence.
//
// chunkSize bounds the nominal size of each chunk; a value <= 0 or >=
// len(data) collapses the plan to a single chunk, which is the path taken
// for plain in-memory matching. workers selects parallelism: with one
// worker (or one chunk) chunks are scanned sequentially in plan order;
// otherwise the chunk list is split into contiguous blocks, one per
// worker, and each worker scans its block into private result slots.
// Assignment is static, there is no work stealing, and no worker ever
// writes a slot another worker reads, so scanning needs no locks. The
// reconciler's final sort makes the output identical for every worker
// count.
//
// The automaton is shared, not copied: it is immutable after construction
// and scanning is pure lookup.
func Run(auto *automaton.Automaton, data []byte, cfg Config, chunkSize, workers int) []automaton.Match {
	if chunkSize <= 0 {
		chunkSize = len(data)
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	chunks := Plan(len(data), chunkSize, auto.MaxPatternLen())

	lists := make([][]automaton.Match, len(chunks))
	if workers <= 1 || len(chunks) == 1 {
		for i, c := range chunks {
			lists[i] = ScanChunk(auto, data, c, cfg)
		}
	} else {
		if workers > len(chunks) {
			workers = len(chunks)
		}
		var g errgroup.Group
		for w := 0; w < workers; w++ {
			lo := w * len(chunks) / workers
			hi := (w + 1) * len(chunks) / workers
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					lists[i] = ScanChunk(auto, data, chunks[i], cfg)
				}
				return nil
			})
		}
		// Workers cannot fail; Wait is only the join point.
		_ = g.Wait()
	}

	return Reconcile(Merge(lists), data, cfg)
}

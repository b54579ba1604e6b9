// Package chunk implements voluta's chunked scanning layer: splitting a
// large input into bounded chunks, scanning them sequentially or in
// parallel with a shared automaton, and reconciling the per-chunk results
// into a single ordered match sequence.
//
// The layer coordinates four pieces:
//   - Planner: computes chunk boundaries with a look-ahead margin derived
//     from the longest pattern (Plan)
//   - Scanner: scans one chunk's read region and keeps the matches the
//     chunk owns (ScanChunk)
//   - Reconciler: merges, deduplicates, selects, and orders (Merge,
//     Reconcile)
//   - Orchestrator: the sequential/parallel driver (Run) and the
//     io.Reader variant for unmappable sources (ScanReader)
//
// Correctness rests on the start-offset ownership rule: a chunk may read
// past its nominal end (to complete matches that straddle the boundary)
// but owns exactly the matches that start inside its nominal range. The
// nominal ranges partition the input, so the union over all chunks is
// exactly the occurrence set a single whole-input scan would produce, with
// no duplicates and no losses, regardless of chunk size or thread count.
package chunk

// Chunk is one planned byte range of the input. [Start, End) is the
// nominal range the chunk owns; [Start, ReadEnd) is the region it actually
// scans, extended past End by up to maxPatternLen-1 bytes so a match that
// begins inside the chunk but ends beyond its nominal boundary is still
// found whole.
type Chunk struct {
	Index   int
	Start   int
	End     int
	ReadEnd int
}

// Config carries the per-matcher options the scanning layer needs. Case
// folding is not here: it is baked into the automaton's transition table.
type Config struct {
	// Overlapping selects whether every pattern occurrence is reported or
	// only the non-overlapping earliest-end subset.
	Overlapping bool

	// WholeWord enables the word-boundary post-filter.
	WholeWord bool
}

// Plan computes the chunk sequence for an input of total bytes.
//
// Chunks are contiguous and exhaustive: the first starts at 0, the last
// ends at total, and each chunk's nominal end is the next chunk's nominal
// start. ReadEnd extends each nominal range by maxPatternLen-1 bytes,
// clamped to total. If total fits in one chunk the plan is a single chunk
// and no boundary reconciliation is needed.
//
// Panics if chunkSize or maxPatternLen is not positive: both come from the
// engine, never from external input, so a bad value is a bug.
func Plan(total, chunkSize, maxPatternLen int) []Chunk {
	if chunkSize < 1 {
		panic("chunk: non-positive chunk size")
	}
	if maxPatternLen < 1 {
		panic("chunk: non-positive max pattern length")
	}

	if total <= chunkSize {
		return []Chunk{{Index: 0, Start: 0, End: total, ReadEnd: total}}
	}

	margin := maxPatternLen - 1
	chunks := make([]Chunk, 0, (total+chunkSize-1)/chunkSize)
	for start := 0; start < total; start += chunkSize {
		end := start + chunkSize
		if end > total {
			end = total
		}
		readEnd := end + margin
		if readEnd > total {
			readEnd = total
		}
		chunks = append(chunks, Chunk{
			Index:   len(chunks),
			Start:   start,
			End:     end,
			ReadEnd: readEnd,
		})
	}
	return chunks
}

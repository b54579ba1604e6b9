// Package source provides the input adapters the scanning layer reads
// from: plain in-memory buffers and memory-mapped files, both exposed
// through one read-only byte-view contract.
//
// The orchestrator stays source-agnostic: it only ever asks a Source for
// its contiguous byte view and its length. Sequential sources that cannot
// offer random access (pipes, sockets) do not implement Source; they go
// through the io.Reader scanning path instead.
package source

// Source is a read-only, contiguously addressable view of an input.
//
// Bytes returns the full view; callers must treat it as immutable. For
// memory-mapped sources the view remains valid only until Close, and
// multiple goroutines may read it concurrently since no writes ever occur.
type Source interface {
	Bytes() []byte
	Len() int
	Close() error
}

// Buffer adapts an in-memory byte slice to the Source contract. The slice
// is not copied; the caller must not mutate it while scans are running.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data as a Source.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the wrapped slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the slice length.
func (b *Buffer) Len() int { return len(b.data) }

// Close is a no-op for in-memory buffers.
func (b *Buffer) Close() error { return nil }

//go:build !unix

package source

import (
	"fmt"
	"os"
)

// Mmap is the portable fallback for platforms without a usable mmap: it
// reads the whole file into memory and serves the same Source contract.
// Scans behave identically; only the peak memory differs.
type Mmap struct {
	data []byte
}

// OpenMmap reads the file at path into memory.
func OpenMmap(path string) (*Mmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return &Mmap{data: data}, nil
}

// Bytes returns the file contents.
func (m *Mmap) Bytes() []byte { return m.data }

// Len returns the content length.
func (m *Mmap) Len() int { return len(m.data) }

// Close releases the buffer.
func (m *Mmap) Close() error {
	m.data = nil
	return nil
}

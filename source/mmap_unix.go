//go:build unix

package source

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mmap is a file mapped into memory as a read-only Source.
//
// The mapping is shared and never written, so any number of goroutines may
// scan disjoint or overlapping regions of it concurrently without
// synchronization. Close unmaps the view; no slice obtained from Bytes may
// be used afterwards.
type Mmap struct {
	data []byte
}

// OpenMmap maps the file at path. The file descriptor is closed before
// returning; the mapping keeps the contents addressable.
//
// Empty files cannot be mapped on most platforms, so a zero-length file
// yields a valid Source with an empty view.
func OpenMmap(path string) (*Mmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mmap: stat %s: %w", path, err)
	}
	size := fi.Size()
	if size == 0 {
		return &Mmap{}, nil
	}
	if size != int64(int(size)) {
		return nil, fmt.Errorf("mmap: %s: file too large to map", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: map %s: %w", path, err)
	}
	return &Mmap{data: data}, nil
}

// Bytes returns the mapped view.
func (m *Mmap) Bytes() []byte { return m.data }

// Len returns the mapped length.
func (m *Mmap) Len() int { return len(m.data) }

// Close unmaps the file.
func (m *Mmap) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("mmap: unmap: %w", err)
	}
	return nil
}

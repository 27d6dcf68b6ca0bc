package pool

import (
	"fmt"
	"os"

	"golang.org/x/exp/mmap"
)

// FileRegion is the file-backed variant of ByteRegion (spec §4.5,
// "Optional file-backed variant: memory-maps a preallocated file ...
// used for exceptionally large parses where the OS swap or an explicit
// file path is preferred over process heap"): a preallocated on-disk
// file with ByteRegion's Allocate contract. FileRegion has no Evict or
// Clear and keeps no peak or evicted counters; space is reclaimed only
// by creating a new region.
//
// golang.org/x/exp/mmap only exposes a read-only mapping, so the write
// side is done through ordinary *os.File writes while the region is
// open. Seal fsyncs and closes the file for writing, then opens it
// read-only via mmap.Open for zero-copy reads, so a caller that wants
// to replay large accepted ranges from disk instead of RAM can do so
// once writing is complete.
type FileRegion struct {
	path     string
	f        *os.File
	used     int
	capacity int
	reader   *mmap.ReaderAt
}

// NewFileRegion creates (truncating) the file at path and preallocates
// capacity bytes for it.
func NewFileRegion(path string, capacity int) (*FileRegion, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		tracer().Errorf("FileRegion: open %q failed: %v", path, err)
		return nil, err
	}
	if err := f.Truncate(int64(capacity)); err != nil {
		f.Close()
		return nil, err
	}
	return &FileRegion{path: path, f: f, capacity: capacity}, nil
}

// Capacity returns the region's total byte capacity.
func (r *FileRegion) Capacity() int { return r.capacity }

// Usage returns the number of bytes currently in use.
func (r *FileRegion) Usage() int { return r.used }

// Allocate reserves n bytes and returns the offset they start at; the
// caller writes through WriteAt.
func (r *FileRegion) Allocate(n int) (int, error) {
	if r.used+n > r.capacity {
		return 0, &ErrOutOfPool{Capacity: r.capacity}
	}
	off := r.used
	r.used += n
	return off, nil
}

// WriteAt writes p at byte offset off, valid only before Seal.
func (r *FileRegion) WriteAt(p []byte, off int64) (int, error) {
	if r.f == nil {
		return 0, fmt.Errorf("pool: FileRegion already sealed")
	}
	return r.f.WriteAt(p, off)
}

// Seal fsyncs and closes the region for writing, then opens a read-only
// memory-mapped view over it via golang.org/x/exp/mmap.
func (r *FileRegion) Seal() error {
	if r.f == nil {
		return nil
	}
	if err := r.f.Sync(); err != nil {
		return err
	}
	if err := r.f.Close(); err != nil {
		return err
	}
	r.f = nil
	reader, err := mmap.Open(r.path)
	if err != nil {
		tracer().Errorf("FileRegion: mmap.Open %q failed: %v", r.path, err)
		return err
	}
	r.reader = reader
	return nil
}

// ReadAt reads from the sealed, memory-mapped region.
func (r *FileRegion) ReadAt(p []byte, off int64) (int, error) {
	if r.reader == nil {
		return 0, fmt.Errorf("pool: FileRegion not sealed")
	}
	return r.reader.ReadAt(p, off)
}

// Close releases the memory mapping, if any.
func (r *FileRegion) Close() error {
	if r.reader != nil {
		return r.reader.Close()
	}
	if r.f != nil {
		return r.f.Close()
	}
	return nil
}

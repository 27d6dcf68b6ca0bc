package pool

// ByteRegion is a literal byte-addressed bump allocator: a preallocated
// byte buffer, a monotonic used-cursor, and allocate/evict/clear
// operations over it. Unlike Pool[T], which the traveller uses for typed State slots,
// ByteRegion hands out raw byte ranges; it exists for collaborators that
// want to pack variable-length payloads (e.g. a staging.Provider caching
// serialized diagnostics) into one contiguous arena instead of per-value
// Go allocations.
type ByteRegion struct {
	bytes    []byte
	used     int
	peak     int
	evicted  int
}

// NewByteRegion preallocates a region of the given capacity in bytes.
func NewByteRegion(capacity int) *ByteRegion {
	return &ByteRegion{bytes: make([]byte, capacity)}
}

// Capacity returns the region's total byte capacity.
func (r *ByteRegion) Capacity() int { return len(r.bytes) }

// Usage returns the number of bytes currently in use.
func (r *ByteRegion) Usage() int { return r.used }

// Peak returns the highest Usage observed since the last Clear.
func (r *ByteRegion) Peak() int { return r.peak }

// Evicted returns the total bytes rolled back by Evict since the last Clear.
func (r *ByteRegion) Evicted() int { return r.evicted }

// Allocate reserves n bytes and returns a slice over them plus the
// offset they start at (needed by Evict's "ptr+n==cursor" check). It
// returns ErrOutOfPool if the region's capacity would be exceeded.
func (r *ByteRegion) Allocate(n int) ([]byte, int, error) {
	if r.used+n > len(r.bytes) {
		return nil, 0, &ErrOutOfPool{Capacity: len(r.bytes)}
	}
	off := r.used
	r.used += n
	if r.used > r.peak {
		r.peak = r.used
	}
	return r.bytes[off:r.used], off, nil
}

// Evict rolls the cursor back to offset iff offset+n equals the current
// cursor (spec §4.5, "evict(ptr, n) succeeds iff ptr + n == cursor").
func (r *ByteRegion) Evict(offset, n int) bool {
	if offset+n != r.used {
		return false
	}
	r.used = offset
	r.evicted += n
	return true
}

// Clear resets the region to empty.
func (r *ByteRegion) Clear() {
	r.used = 0
	r.peak = 0
	r.evicted = 0
}

package pool

import (
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAllocateAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.pool")
	defer teardown()
	//
	p := NewPool[int](4)
	i1, err := p.Allocate(10)
	if err != nil {
		t.Fatal(err)
	}
	i2, err := p.Allocate(20)
	if err != nil {
		t.Fatal(err)
	}
	if *p.Get(i1) != 10 || *p.Get(i2) != 20 {
		t.Errorf("got %d, %d; want 10, 20", *p.Get(i1), *p.Get(i2))
	}
	if p.Usage() != 2 {
		t.Errorf("usage=%d, want 2", p.Usage())
	}
}

func TestOutOfPool(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.pool")
	defer teardown()
	//
	p := NewPool[int](1)
	if _, err := p.Allocate(1); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Allocate(2); err == nil {
		t.Fatal("expected ErrOutOfPool")
	}
}

func TestEvictLIFOOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.pool")
	defer teardown()
	//
	p := NewPool[int](8)
	p.Allocate(1)
	mark := p.Next()
	p.Allocate(2)
	p.Allocate(3)
	if !p.Evict(mark) {
		t.Fatal("Evict at tail mark should succeed")
	}
	if p.Usage() != 1 {
		t.Errorf("usage=%d, want 1 after eviction", p.Usage())
	}
	if p.Evicted() != 2 {
		t.Errorf("evicted=%d, want 2", p.Evicted())
	}
}

func TestPeakTracksAcrossEviction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.pool")
	defer teardown()
	//
	p := NewPool[int](8)
	p.Allocate(1)
	mark := p.Next()
	p.Allocate(2)
	p.Allocate(3)
	p.Evict(mark)
	if p.Peak() != 3 {
		t.Errorf("peak=%d, want 3 (peak survives eviction)", p.Peak())
	}
	if p.Usage() != 1 {
		t.Errorf("usage=%d, want 1", p.Usage())
	}
}

func TestClearResetsAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.pool")
	defer teardown()
	//
	p := NewPool[int](8)
	p.Allocate(1)
	p.Allocate(2)
	p.Clear()
	if p.Usage() != 0 || p.Peak() != 0 || p.Evicted() != 0 {
		t.Errorf("Clear did not reset usage/peak/evicted: %d/%d/%d", p.Usage(), p.Peak(), p.Evicted())
	}
}

func TestByteRegionAllocateAndEvict(t *testing.T) {
	r := NewByteRegion(16)
	buf, off, err := r.Allocate(4)
	if err != nil {
		t.Fatal(err)
	}
	copy(buf, []byte{1, 2, 3, 4})
	if r.Usage() != 4 {
		t.Errorf("usage=%d, want 4", r.Usage())
	}
	if !r.Evict(off, 4) {
		t.Errorf("Evict at tail should succeed")
	}
	if r.Usage() != 0 {
		t.Errorf("usage=%d, want 0 after evict", r.Usage())
	}
}

func TestFileRegionWriteSealRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swap.bin")
	r, err := NewFileRegion(path, 64)
	if err != nil {
		t.Fatal(err)
	}
	off, err := r.Allocate(5)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.WriteAt([]byte("hello"), int64(off)); err != nil {
		t.Fatal(err)
	}
	if err := r.Seal(); err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	buf := make([]byte, 5)
	if _, err := r.ReadAt(buf, int64(off)); err != nil {
		t.Fatal(err)
	}
	if string(buf) != "hello" {
		t.Errorf("got %q, want \"hello\"", buf)
	}
}

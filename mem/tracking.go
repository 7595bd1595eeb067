package mem

import (
	"github.com/MartinNowak/memutils/internal/log"
	"github.com/MartinNowak/memutils/table"
)

// Tracking is the debug decorator: it records every outstanding
// (address, size) pair in a hash table and asserts on double frees, frees
// of foreign addresses, and size mismatches. The live and peak counters
// make it the leak detector the test suites lean on.
type Tracking struct {
	base Allocator
	live *table.Table[uintptr, int]

	liveBytes int64
	peakBytes int64
}

// NewTracking creates a tracking decorator over base.
func NewTracking(base Allocator) *Tracking {
	return &Tracking{
		base: base,
		live: table.New[uintptr, int](table.HashUintptr),
	}
}

// Alloc delegates to the base allocator and records the returned block.
// An address that is already tracked means the base allocator handed out
// the same memory twice; that is fatal corruption.
func (a *Tracking) Alloc(size int) Block {
	blk := a.base.Alloc(size)
	addr := uintptr(blk.Ptr)
	if a.live.Contains(addr) {
		fatalf(ErrUntracked, "base returned live address ptr=%p size=%d", blk.Ptr, size)
	}
	a.live.Set(addr, size)
	a.liveBytes += int64(size)
	if a.liveBytes > a.peakBytes {
		a.peakBytes = a.liveBytes
	}
	return blk
}

// Free asserts the block is tracked with exactly the freed size, removes
// the record, and delegates.
func (a *Tracking) Free(b Block) {
	checkFree(b)
	addr := uintptr(b.Ptr)
	size, ok := a.live.Get(addr)
	if !ok {
		fatalf(ErrUntracked, "ptr=%p size=%d", b.Ptr, b.Size)
	}
	if size != b.Size {
		fatalf(ErrSizeMismatch, "ptr=%p recorded=%d freed=%d", b.Ptr, size, b.Size)
	}
	a.live.Remove(addr)
	a.liveBytes -= int64(size)
	a.base.Free(b)
}

// LiveBlocks returns the number of outstanding blocks.
func (a *Tracking) LiveBlocks() int {
	return a.live.Len()
}

// LiveBytes returns the number of outstanding bytes.
func (a *Tracking) LiveBytes() int64 {
	return a.liveBytes
}

// PeakBytes returns the high-water mark of outstanding bytes.
func (a *Tracking) PeakBytes() int64 {
	return a.peakBytes
}

// ReportLeaks logs every outstanding block and returns their count. Zero
// means every Alloc was matched by a Free.
func (a *Tracking) ReportLeaks() int {
	n := a.live.Len()
	if n == 0 {
		return 0
	}
	l := log.Get()
	a.live.Range(func(addr uintptr, size int) bool {
		l.Warnf("mem: leaked block addr=0x%x size=%d", addr, size)
		return true
	})
	return n
}

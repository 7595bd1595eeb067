package mem

import (
	"github.com/MartinNowak/memutils/internal/log"
	"github.com/MartinNowak/memutils/internal/osmem"
)

// Base is the root of every allocator chain. It obtains memory from the
// platform via osmem and establishes the 16-byte alignment contract by
// over-allocating one Alignment's worth of slack and encoding the shift in
// the recovery byte.
type Base struct {
	logAlloc bool
}

// NewBase creates the root allocator.
func NewBase() *Base {
	return &Base{}
}

// padded returns the platform-level size backing a request of n bytes.
func padded(n int) int {
	return AlignedSize(n) + Alignment
}

// Alloc obtains a zeroed block from the platform. Panics with
// ErrOutOfMemory when the platform refuses.
func (a *Base) Alloc(size int) Block {
	if size < 0 {
		fatalf(ErrBadSize, "size=%d", size)
	}
	raw, err := osmem.Alloc(padded(size))
	if err != nil {
		fatalf(ErrOutOfMemory, "size=%d: %v", size, err)
	}
	aligned := AdjustPointerAlignment(raw)
	if a.logAlloc {
		log.Get().Debugf("mem: base alloc size=%d ptr=%p", size, aligned)
	}
	return Block{Ptr: aligned, Size: size}
}

// Free returns a block to the platform.
func (a *Base) Free(b Block) {
	checkFree(b)
	raw := ExtractUnalignedPointer(b.Ptr)
	if err := osmem.Free(raw, padded(b.Size)); err != nil {
		fatalf(ErrUntracked, "ptr=%p size=%d: %v", b.Ptr, b.Size, err)
	}
}

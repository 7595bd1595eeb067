package mem

import (
	"errors"
	"fmt"

	"github.com/MartinNowak/memutils/internal/log"
)

var (
	// ErrOutOfMemory indicates the platform allocator failed. Not retried:
	// retry cannot manufacture memory.
	ErrOutOfMemory = errors.New("mem: platform allocation failed")

	// ErrNilFree indicates a Free call with a nil block pointer.
	ErrNilFree = errors.New("mem: free of nil block")

	// ErrMisaligned indicates a Free call with a pointer that is not
	// 16-byte aligned, i.e. one this chain cannot have produced.
	ErrMisaligned = errors.New("mem: free of misaligned pointer")

	// ErrBadSize indicates an Alloc call with a negative size.
	ErrBadSize = errors.New("mem: negative allocation size")

	// ErrUntracked indicates a tracked Free of an address with no live
	// record: a double free or a foreign block.
	ErrUntracked = errors.New("mem: free of untracked address")

	// ErrSizeMismatch indicates a tracked Free whose size does not equal
	// the size recorded at Alloc.
	ErrSizeMismatch = errors.New("mem: freed size does not match allocation")

	// ErrPoolKind indicates Registry.Get was called with KindPool. Pools
	// are per-task instances; resolve them with TaskPool.
	ErrPoolKind = errors.New("mem: pool allocators are resolved per task")

	// ErrBadKind indicates registry resolution with a kind outside the
	// closed tag set.
	ErrBadKind = errors.New("mem: unknown allocator kind")

	// ErrZeroTask indicates pool resolution with the reserved zero task
	// identity.
	ErrZeroTask = errors.New("mem: task identity 0 is reserved")
)

// fatalf reports a contract violation or exhaustion and panics with an error
// wrapping sentinel. There is no recovery path by design: a violated
// allocator contract means state above this layer is already suspect.
func fatalf(sentinel error, format string, args ...any) {
	err := fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
	log.Get().Error(err.Error())
	panic(err)
}

// checkFree asserts the Free preconditions shared by every chain: a non-nil,
// 16-byte-aligned block pointer.
func checkFree(b Block) {
	if b.Ptr == nil {
		fatalf(ErrNilFree, "size=%d", b.Size)
	}
	if uintptr(b.Ptr)&(Alignment-1) != 0 {
		fatalf(ErrMisaligned, "ptr=%p", b.Ptr)
	}
}

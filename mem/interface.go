package mem

import "unsafe"

// Block is a contiguous byte range handed out by an allocator. Ptr is always
// 16-byte aligned when observed by a caller; Size equals the requested size,
// even when the chain over-allocated internally.
//
// Exactly one allocator chain owns a Block between its Alloc and the
// matching Free. Passing a Block to any other chain's Free is a contract
// violation.
type Block struct {
	Ptr  unsafe.Pointer
	Size int
}

// Bytes returns the block contents as a byte slice. The slice aliases the
// block and must not be used after the block is freed.
func (b Block) Bytes() []byte {
	return unsafe.Slice((*byte)(b.Ptr), b.Size)
}

// Allocator is the capability contract every strategy implements.
//
// Alloc returns a block of exactly size bytes whose pointer is 16-byte
// aligned. Free takes back a block produced by the same chain. Both panic
// on contract violations and on platform memory exhaustion; neither returns
// errors (see the package documentation).
type Allocator interface {
	Alloc(size int) Block
	Free(b Block)
}

// DestructorRecorder is implemented by allocators that defer teardown to a
// bulk-release point (the Pool). The typed helpers use it to register a
// destructor thunk alongside an allocation instead of running the
// destructor at free time.
type DestructorRecorder interface {
	AllocWithDestructor(size int, dtor func(unsafe.Pointer)) Block
}

// Kind identifies an allocator strategy for registry resolution.
type Kind uint8

const (
	// KindRaw resolves the Base allocator: every request goes to the
	// platform.
	KindRaw Kind = iota + 1

	// KindFreeList resolves the recycling allocator, the default choice for
	// high-frequency, similar-size churn.
	KindFreeList

	// KindPool identifies scope-bound pool allocators. Pools are per-task
	// instances, not singletons; resolve them with Registry.TaskPool.
	KindPool

	// KindZeroise resolves the zero-on-free allocator for sensitive data.
	KindZeroise

	// KindLocking resolves a mutex-guarded free-list chain safe to share
	// across threads.
	KindLocking

	// KindTracking resolves the debug allocator that records live blocks.
	KindTracking

	kindCount = iota + 1
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindFreeList:
		return "freelist"
	case KindPool:
		return "pool"
	case KindZeroise:
		return "zeroise"
	case KindLocking:
		return "locking"
	case KindTracking:
		return "tracking"
	}
	return "unknown"
}

// Package mem provides a layered memory-allocation framework: a small
// allocator contract implemented by interchangeable strategies, composed
// into chains and resolved through a registry.
//
// # Overview
//
// Every allocator chain terminates in the Base allocator, which obtains
// page-backed memory from the platform (outside Go's garbage collector).
// Decorators layer behavior on top of it:
//
//   - FreeList: recycles freed blocks in size buckets without touching the
//     platform again
//   - Pool: bump-allocates within slabs, records destructor thunks, and
//     releases everything in one FreeAll
//   - Zeroise: overwrites a block with zeros before releasing it, for
//     sensitive data
//   - Locking: serializes a chain behind a mutex for cross-thread sharing
//   - Tracking: records every live (address, size) pair and asserts on
//     mismatched frees, for leak detection
//
// # The Contract
//
// Alloc returns a Block whose pointer is 16-byte aligned and whose size
// equals the request. Free takes back a Block produced by the same chain.
// Violations of either side are programmer errors and panic immediately:
// this layer sits beneath code that cannot recover from a corrupted
// allocator, so it fails loudly instead of degrading.
//
// # Resolution
//
// A Registry resolves one singleton chain per Kind, lazily on first use:
//
//	a := mem.Default().Get(mem.KindFreeList)
//	b := a.Alloc(256)
//	defer a.Free(b)
//
// Pool allocators are the exception: they are scoped to a cooperative task
// and resolved by task identity via TaskPool. The task scheduler must call
// ReleaseTaskPool when the task ends; see the Registry documentation.
//
// # Thread Safety
//
// Chains are not synchronized. The intended model is one owner per chain:
// singletons are used from the thread that resolved them, pools only from
// the task that created them. A chain shared across threads must be
// composed with the Locking decorator (KindLocking does this).
//
// # Related Packages
//
//   - github.com/MartinNowak/memutils/typed: typed object and array
//     helpers over any Allocator
//   - github.com/MartinNowak/memutils/table: the hash table backing the
//     tracking allocator and the registry's task-pool map
package mem

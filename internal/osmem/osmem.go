// Package osmem obtains raw memory from the platform, outside the reach of
// Go's garbage collector. Every allocator chain in this module bottoms out
// here.
//
// Alloc returns zeroed, page-backed memory; Free must be called with the
// exact pointer and size that Alloc returned. Platform-specific backends
// live in the build-tagged files; the fallback backend pins Go-heap buffers
// in a package map so the contract holds everywhere.
package osmem

import "unsafe"

// Alloc returns n bytes of zeroed memory that the Go runtime will not move
// or reclaim. n must be positive.
func Alloc(n int) (unsafe.Pointer, error) {
	return alloc(n)
}

// Free returns memory previously obtained from Alloc. p must be the pointer
// Alloc returned and n the size it was asked for.
func Free(p unsafe.Pointer, n int) error {
	return free(p, n)
}

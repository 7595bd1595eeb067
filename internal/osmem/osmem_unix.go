//go:build unix

package osmem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func alloc(n int) (unsafe.Pointer, error) {
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(&data[0]), nil
}

func free(p unsafe.Pointer, n int) error {
	// Munmap needs the original slice; rebuild it from the pointer.
	return unix.Munmap(unsafe.Slice((*byte)(p), n))
}

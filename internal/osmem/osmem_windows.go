//go:build windows

package osmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func alloc(n int) (unsafe.Pointer, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(addr), nil
}

func free(p unsafe.Pointer, _ int) error {
	// MEM_RELEASE frees the whole reservation; size must be 0.
	return windows.VirtualFree(uintptr(p), 0, windows.MEM_RELEASE)
}

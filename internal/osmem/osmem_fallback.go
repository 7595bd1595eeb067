//go:build !unix && !windows

package osmem

import (
	"errors"
	"sync"
	"unsafe"
)

// Fallback backend: Go-heap buffers held in a package map so the collector
// treats them as live until Free.

var (
	pinMu sync.Mutex
	pins  = make(map[uintptr][]byte)
)

var errNotPinned = errors.New("osmem: free of unknown pointer")

func alloc(n int) (unsafe.Pointer, error) {
	buf := make([]byte, n)
	p := unsafe.Pointer(&buf[0])
	pinMu.Lock()
	pins[uintptr(p)] = buf
	pinMu.Unlock()
	return p, nil
}

func free(p unsafe.Pointer, _ int) error {
	pinMu.Lock()
	defer pinMu.Unlock()
	if _, ok := pins[uintptr(p)]; !ok {
		return errNotPinned
	}
	delete(pins, uintptr(p))
	return nil
}

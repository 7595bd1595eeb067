package mem

import "sync"

// Locking serializes Alloc and Free through a mutex, making an otherwise
// single-owner chain safe to share across independently-scheduled threads.
type Locking struct {
	mu   sync.Mutex
	base Allocator
}

// NewLocking creates a mutex-guarded decorator over base.
func NewLocking(base Allocator) *Locking {
	return &Locking{base: base}
}

// Alloc delegates under the lock.
func (a *Locking) Alloc(size int) Block {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.base.Alloc(size)
}

// Free delegates under the lock.
func (a *Locking) Free(b Block) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.base.Free(b)
}

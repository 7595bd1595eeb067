package mem

// Zeroise overwrites a block's bytes with zero before handing it back to
// the base allocator, so no residual plaintext of sensitive data survives
// in the freed region. Alloc is a pass-through: callers get no
// zero-on-allocate guarantee.
type Zeroise struct {
	base Allocator
}

// NewZeroise creates a zero-on-free decorator over base.
func NewZeroise(base Allocator) *Zeroise {
	return &Zeroise{base: base}
}

// Alloc delegates to the base allocator.
func (a *Zeroise) Alloc(size int) Block {
	return a.base.Alloc(size)
}

// Free wipes the block, then delegates.
func (a *Zeroise) Free(b Block) {
	checkFree(b)
	buf := b.Bytes()
	for i := range buf {
		buf[i] = 0
	}
	a.base.Free(b)
}

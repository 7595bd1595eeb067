package mem

import "unsafe"

// Pool is a bump-style, scope-bound allocator. Its intended lifetime is a
// single cooperative task or an explicit scope: allocations are recorded,
// optionally with a destructor thunk, and FreeAll releases every live block
// in one bulk operation. Per-block Free is accepted but does nothing;
// reclamation is the scope's job, which is what guarantees no leaks survive
// scope exit as long as the owner always calls FreeAll.
type Pool struct {
	base     Allocator
	slabSize int

	slabs []slab  // slabs[len-1] is the active bump region
	large []Block // dedicated blocks for requests that exceed a slab
	dtors []poolDtor
	live  int
}

type slab struct {
	block Block
	used  int
}

type poolDtor struct {
	ptr  unsafe.Pointer
	dtor func(unsafe.Pointer)
}

// NewPool creates a pool that carves its slabs out of base. slabSize below
// the minimum bump granularity is rounded up.
func NewPool(base Allocator, slabSize int) *Pool {
	if slabSize < Alignment*2 {
		slabSize = Alignment * 2
	}
	return &Pool{base: base, slabSize: AlignedSize(slabSize)}
}

// Alloc bump-allocates size bytes from the active slab, starting a new slab
// or falling back to a dedicated block when the request does not fit.
func (p *Pool) Alloc(size int) Block {
	if size < 0 {
		fatalf(ErrBadSize, "size=%d", size)
	}
	need := AlignedSize(size)

	if need > p.slabSize {
		blk := p.base.Alloc(size)
		p.large = append(p.large, blk)
		p.live++
		return blk
	}

	if len(p.slabs) == 0 || p.slabs[len(p.slabs)-1].used+need > p.slabSize {
		p.slabs = append(p.slabs, slab{block: p.base.Alloc(p.slabSize)})
	}
	s := &p.slabs[len(p.slabs)-1]
	// Slab starts 16-byte aligned and used only grows by aligned sizes, so
	// every bump result satisfies the contract.
	ptr := unsafe.Add(s.block.Ptr, s.used)
	s.used += need
	p.live++
	return Block{Ptr: ptr, Size: size}
}

// AllocWithDestructor allocates like Alloc and records dtor to run against
// the block during FreeAll. Thunks run in reverse allocation order, though
// callers must not rely on ordering between unrelated allocations.
func (p *Pool) AllocWithDestructor(size int, dtor func(unsafe.Pointer)) Block {
	blk := p.Alloc(size)
	if dtor != nil {
		p.dtors = append(p.dtors, poolDtor{ptr: blk.Ptr, dtor: dtor})
	}
	return blk
}

// Free validates the block but releases nothing; pool memory is reclaimed
// by FreeAll.
func (p *Pool) Free(b Block) {
	checkFree(b)
}

// FreeAll runs every recorded destructor thunk exactly once, returns all
// slabs and dedicated blocks to the base allocator, and resets the pool for
// reuse.
func (p *Pool) FreeAll() {
	for i := len(p.dtors) - 1; i >= 0; i-- {
		p.dtors[i].dtor(p.dtors[i].ptr)
	}
	p.dtors = nil

	for _, blk := range p.large {
		p.base.Free(blk)
	}
	p.large = nil

	for _, s := range p.slabs {
		p.base.Free(s.block)
	}
	p.slabs = nil
	p.live = 0
}

// Live returns the number of blocks recorded since the last FreeAll.
func (p *Pool) Live() int {
	return p.live
}

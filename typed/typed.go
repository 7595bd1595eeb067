package typed

import (
	"reflect"
	"unsafe"

	"github.com/MartinNowak/memutils/mem"
)

// Initializer is the optional constructor hook. AllocObject and AllocArray
// call Init after zero initialization.
type Initializer interface {
	Init()
}

// Destructor is the optional teardown hook. FreeObject and FreeArray call
// Destroy before releasing memory; bulk-release allocators run it as a
// recorded thunk during FreeAll instead.
type Destructor interface {
	Destroy()
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// destructorOf returns a thunk invoking Destroy on a *T, or nil when T has
// no destructor.
func destructorOf[T any]() func(unsafe.Pointer) {
	var zero T
	if _, ok := any(&zero).(Destructor); !ok {
		return nil
	}
	return func(p unsafe.Pointer) {
		any((*T)(p)).(Destructor).Destroy() //nolint:errcheck // checked above
	}
}

// allocBlock requests size bytes, routing the destructor thunk to the
// allocator when it records them.
func allocBlock(a mem.Allocator, size int, dtor func(unsafe.Pointer)) mem.Block {
	if rec, ok := a.(mem.DestructorRecorder); ok && dtor != nil {
		return rec.AllocWithDestructor(size, dtor)
	}
	return a.Alloc(size)
}

// AllocObject allocates and constructs a single T on a.
func AllocObject[T any](a mem.Allocator) *T {
	blk := allocBlock(a, sizeOf[T](), destructorOf[T]())
	registerRegion(blk, typeOf[T]())

	p := (*T)(blk.Ptr)
	var zero T
	*p = zero
	if init, ok := any(p).(Initializer); ok {
		init.Init()
	}
	return p
}

// FreeObject destroys p and returns its block to a. A nil p is a no-op.
// When a records destructor thunks, Destroy is left to the allocator's
// bulk release.
func FreeObject[T any](a mem.Allocator, p *T) {
	if p == nil {
		return
	}
	_, deferred := a.(mem.DestructorRecorder)
	if d, ok := any(p).(Destructor); ok && !deferred {
		d.Destroy()
	}
	blk := mem.Block{Ptr: unsafe.Pointer(p), Size: sizeOf[T]()}
	unregisterRegion(blk, typeOf[T]())
	a.Free(blk)
}

// AllocArray allocates and constructs a contiguous sequence of n elements.
func AllocArray[T any](a mem.Allocator, n int) []T {
	if n < 0 {
		n = 0
	}
	size := n * sizeOf[T]()

	var dtor func(unsafe.Pointer)
	if elem := destructorOf[T](); elem != nil {
		stride := sizeOf[T]()
		count := n
		dtor = func(p unsafe.Pointer) {
			for i := 0; i < count; i++ {
				elem(unsafe.Add(p, i*stride))
			}
		}
	}

	blk := allocBlock(a, size, dtor)
	registerRegion(blk, typeOf[T]())

	s := unsafe.Slice((*T)(blk.Ptr), n)
	clear(s)
	var zero T
	if _, ok := any(&zero).(Initializer); ok {
		for i := range s {
			any(&s[i]).(Initializer).Init() //nolint:errcheck // checked above
		}
	}
	return s
}

// ReallocArray resizes s to n elements, copying the retained prefix and
// zero-filling any newly grown tail so no uninitialized bytes survive that
// a conservative scanner could misread. A nil s behaves like AllocArray.
func ReallocArray[T any](a mem.Allocator, s []T, n int) []T {
	if s == nil {
		return AllocArray[T](a, n)
	}
	if n == len(s) {
		return s
	}
	if n < 0 {
		n = 0
	}

	blk := a.Alloc(n * sizeOf[T]())
	registerRegion(blk, typeOf[T]())

	ns := unsafe.Slice((*T)(blk.Ptr), n)
	m := copy(ns, s)
	clear(ns[m:])

	old := mem.Block{Ptr: unsafe.Pointer(unsafe.SliceData(s)), Size: len(s) * sizeOf[T]()}
	unregisterRegion(old, typeOf[T]())
	a.Free(old)
	return ns
}

// FreeArray destroys every element and returns the sequence's block to a.
// A nil s is a no-op. Like FreeObject, destruction is left to a bulk
// release when the allocator records thunks.
func FreeArray[T any](a mem.Allocator, s []T) {
	if s == nil {
		return
	}
	_, deferred := a.(mem.DestructorRecorder)
	if !deferred {
		var zero T
		if _, ok := any(&zero).(Destructor); ok {
			for i := range s {
				any(&s[i]).(Destructor).Destroy() //nolint:errcheck // checked above
			}
		}
	}
	blk := mem.Block{Ptr: unsafe.Pointer(unsafe.SliceData(s)), Size: len(s) * sizeOf[T]()}
	unregisterRegion(blk, typeOf[T]())
	a.Free(blk)
}

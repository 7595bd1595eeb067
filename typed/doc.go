// Package typed layers object and array semantics over any mem.Allocator:
// sizing, alignment, construction and teardown, plus optional registration
// of reference-holding regions with an external scanning collector.
//
// # Objects
//
//	type session struct{ key [32]byte }
//
//	a := mem.Default().Get(mem.KindFreeList)
//	s := typed.AllocObject[session](a)
//	defer typed.FreeObject(a, s)
//
// Construction is zero initialization followed by Init when the type
// implements Initializer. Teardown runs Destroy when the type implements
// Destructor; on a bulk-release allocator (the Pool) the destructor is
// recorded as a thunk and runs during FreeAll instead.
//
// # Arrays
//
// AllocArray, ReallocArray and FreeArray are the sequence counterparts.
// ReallocArray zero-fills the grown tail so stale bytes from a recycled
// block can never be misread, by a conservative scanner or anyone else.
// On a bulk-release pool, ReallocArray does not re-record destructors;
// allocate per scope instead of resizing across scopes.
//
// # Scanning Collector
//
// Types that may contain references are registered with the configured
// Collector so an external conservative collector can scan them. The
// default collector is a no-op. Types that hold no references the scanner
// cares about can opt out:
//
//	typed.MarkNoScan[session]()
//
// Note that the Go runtime's own collector does not scan manually managed
// memory either way: values stored through this package must not be the
// only reference keeping a Go-heap object alive unless the configured
// Collector arranges that.
package typed

package typed

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/MartinNowak/memutils/mem"
)

// Collector is the scanning-collector collaborator. A conservative
// collector implementation scans registered regions for potential
// references; the default NopCollector preserves the interface where no
// such collector exists.
type Collector interface {
	RegisterRegion(ptr unsafe.Pointer, size int, typ reflect.Type)
	UnregisterRegion(ptr unsafe.Pointer)
}

// NopCollector ignores all registrations.
type NopCollector struct{}

func (NopCollector) RegisterRegion(unsafe.Pointer, int, reflect.Type) {}
func (NopCollector) UnregisterRegion(unsafe.Pointer)                  {}

var collector Collector = NopCollector{}

// SetCollector injects the scanning collector used for region
// registration. Call once during startup, before allocations.
func SetCollector(c Collector) {
	if c == nil {
		c = NopCollector{}
	}
	collector = c
}

// noScan holds types explicitly marked reference-free; refCache memoizes
// the reflect walk per type.
var (
	noScan   sync.Map // reflect.Type -> struct{}
	refCache sync.Map // reflect.Type -> bool
)

// MarkNoScan exempts T from scanning-collector registration even when its
// layout could hold references.
func MarkNoScan[T any]() {
	noScan.Store(reflect.TypeOf((*T)(nil)).Elem(), struct{}{})
}

// scannable reports whether regions of type t must be registered: the type
// may contain references and has not been marked reference-free.
func scannable(t reflect.Type) bool {
	if _, ok := noScan.Load(t); ok {
		return false
	}
	if v, ok := refCache.Load(t); ok {
		return v.(bool)
	}
	v := hasRefs(t)
	refCache.Store(t, v)
	return v
}

// hasRefs walks a type's layout looking for anything a scanner would treat
// as a potential reference.
func hasRefs(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasRefs(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasRefs(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// registerRegion registers b with the collector when the element type calls
// for it.
func registerRegion(b mem.Block, t reflect.Type) {
	if b.Size == 0 || !scannable(t) {
		return
	}
	collector.RegisterRegion(b.Ptr, b.Size, t)
}

// unregisterRegion is the matching deregistration.
func unregisterRegion(b mem.Block, t reflect.Type) {
	if b.Size == 0 || !scannable(t) {
		return
	}
	collector.UnregisterRegion(b.Ptr)
}

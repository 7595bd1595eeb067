package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry(&Options{PoolSlabSize: 4096, TrackingCapacity: 16})
}

func TestRegistrySingletonPerKind(t *testing.T) {
	r := testRegistry()

	for _, kind := range []Kind{KindRaw, KindFreeList, KindZeroise, KindLocking, KindTracking} {
		first := r.Get(kind)
		second := r.Get(kind)
		require.NotNil(t, first)
		require.Same(t, first, second, "kind %s must resolve to one instance", kind)
	}
}

func TestRegistryKindsAreDistinct(t *testing.T) {
	r := testRegistry()
	require.NotSame(t, r.Get(KindRaw), r.Get(KindFreeList))
	require.NotSame(t, r.Get(KindFreeList), r.Get(KindTracking))
}

func TestRegistryPoolKindRejected(t *testing.T) {
	r := testRegistry()
	requirePanicsIs(t, ErrPoolKind, func() {
		r.Get(KindPool)
	})
}

func TestRegistryUnknownKindFatal(t *testing.T) {
	r := testRegistry()
	requirePanicsIs(t, ErrBadKind, func() {
		r.Get(Kind(99))
	})
}

func TestRegistryTaskPoolLifecycle(t *testing.T) {
	r := testRegistry()

	p1 := r.TaskPool(7)
	p2 := r.TaskPool(7)
	require.Same(t, p1, p2, "same task must resolve to the cached pool")
	require.Equal(t, 1, r.TaskPoolCount())

	other := r.TaskPool(8)
	require.NotSame(t, p1, other, "distinct tasks own distinct pools")
	require.Equal(t, 2, r.TaskPoolCount())

	destroyed := 0
	p1.AllocWithDestructor(64, func(unsafe.Pointer) { destroyed++ })
	p1.AllocWithDestructor(64, func(unsafe.Pointer) { destroyed++ })

	r.ReleaseTaskPool(7)
	require.Equal(t, 2, destroyed, "teardown must FreeAll the pool")
	require.Equal(t, 1, r.TaskPoolCount())

	// A fresh resolution after teardown is a new pool.
	require.NotSame(t, p1, r.TaskPool(7))
	r.ReleaseTaskPool(7)
	r.ReleaseTaskPool(8)
	require.Zero(t, r.TaskPoolCount())
}

func TestRegistryReleaseUnknownTaskIsNoOp(t *testing.T) {
	r := testRegistry()
	// Benign double teardown: a diagnostic, not an error.
	require.NotPanics(t, func() {
		r.ReleaseTaskPool(12345)
	})
}

func TestRegistryZeroTaskFatal(t *testing.T) {
	r := testRegistry()
	requirePanicsIs(t, ErrZeroTask, func() {
		r.TaskPool(0)
	})
}

func TestDefaultRegistryIsStable(t *testing.T) {
	require.Same(t, Default(), Default())
}

func TestRegistryManyTasks(t *testing.T) {
	r := testRegistry()

	// Enough tasks to force the task-pool table through several resizes.
	for id := TaskID(1); id <= 200; id++ {
		p := r.TaskPool(id)
		p.Alloc(32)
	}
	require.Equal(t, 200, r.TaskPoolCount())

	for id := TaskID(1); id <= 200; id += 2 {
		r.ReleaseTaskPool(id)
	}
	require.Equal(t, 100, r.TaskPoolCount())

	// Remaining tasks must still resolve to their original pools.
	for id := TaskID(2); id <= 200; id += 2 {
		require.Equal(t, 1, r.TaskPool(id).Live())
		r.ReleaseTaskPool(id)
	}
	require.Zero(t, r.TaskPoolCount())
}

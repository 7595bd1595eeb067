package mem

import (
	"sync"

	"github.com/MartinNowak/memutils/internal/log"
	"github.com/MartinNowak/memutils/table"
)

// TaskID identifies a cooperative task for pool resolution. The zero value
// is reserved; schedulers must hand out non-zero identities.
type TaskID uint64

func hashTask(t TaskID) uint64 {
	return table.HashUint64(uint64(t))
}

// Registry resolves allocator chains. Each Kind other than KindPool maps to
// exactly one lazily-constructed singleton owned by the registry; KindPool
// resolves per cooperative task through TaskPool.
//
// A Registry is an explicit value, not ambient global state: own one at the
// process or runtime root and thread it to where allocations happen. Its
// mutation (lazy singleton construction, task-pool insert and teardown) is
// expected to run under a cooperative scheduler's single-threaded execution
// model and is not otherwise synchronized. Chains handed out for
// cross-thread sharing are the KindLocking composition.
type Registry struct {
	opts       Options
	singletons [kindCount]Allocator
	pools      *table.Table[TaskID, *Pool]
}

// NewRegistry creates an empty registry. A nil opts loads Options from the
// environment.
func NewRegistry(opts *Options) *Registry {
	o := Options{}
	if opts != nil {
		o = *opts
	} else {
		o = LoadOptions()
	}
	return &Registry{
		opts:  o,
		pools: table.New[TaskID, *Pool](hashTask),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, constructing it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// Get returns the singleton chain for kind, constructing it on first use.
// The first caller pays the construction cost; later callers receive the
// same instance. KindPool is rejected: pools are per-task, use TaskPool.
func (r *Registry) Get(kind Kind) Allocator {
	if kind == KindPool {
		fatalf(ErrPoolKind, "use Registry.TaskPool")
	}
	if kind <= 0 || int(kind) >= kindCount {
		fatalf(ErrBadKind, "kind=%d", kind)
	}
	if a := r.singletons[kind]; a != nil {
		return a
	}
	a := r.build(kind)
	r.singletons[kind] = a
	return a
}

// build constructs the chain for kind. Compositions terminate in the shared
// Base singleton; the locking chain gets a free list of its own, since the
// KindFreeList singleton is single-owner by contract.
func (r *Registry) build(kind Kind) Allocator {
	switch kind {
	case KindRaw:
		return &Base{logAlloc: r.opts.LogAlloc}
	case KindFreeList:
		return NewFreeList(r.Get(KindRaw))
	case KindZeroise:
		return NewZeroise(r.Get(KindRaw))
	case KindLocking:
		return NewLocking(NewFreeList(r.Get(KindRaw)))
	case KindTracking:
		tr := NewTracking(r.Get(KindRaw))
		tr.live.Reserve(r.opts.TrackingCapacity)
		return tr
	}
	fatalf(ErrBadKind, "kind=%d", kind)
	return nil
}

// TaskPool returns the pool owned by the given cooperative task, creating
// and caching one on the task's first allocation request.
func (r *Registry) TaskPool(task TaskID) *Pool {
	if task == 0 {
		fatalf(ErrZeroTask, "task=%d", task)
	}
	if p, ok := r.pools.Get(task); ok {
		return p
	}
	p := NewPool(r.Get(KindFreeList), r.opts.PoolSlabSize)
	r.pools.Set(task, p)
	if r.opts.LogAlloc {
		log.Get().Debugf("mem: created pool for task %d", task)
	}
	return p
}

// ReleaseTaskPool tears down the pool owned by task: FreeAll, then removal
// of the registry entry. The task scheduler calls this when a cooperative
// task ends. Releasing a task with no registered pool is a benign no-op
// (typically a double teardown) and is only reported at debug level.
func (r *Registry) ReleaseTaskPool(task TaskID) {
	p, ok := r.pools.Get(task)
	if !ok {
		log.Get().Debugf("mem: release of unknown task %d, ignoring", task)
		return
	}
	p.FreeAll()
	r.pools.Remove(task)
}

// TaskPoolCount returns the number of live task pools.
func (r *Registry) TaskPoolCount() int {
	return r.pools.Len()
}

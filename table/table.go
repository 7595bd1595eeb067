package table

// minCapacity is the smallest slot array ever allocated. Capacities are
// always powers of two so the probe index can be masked instead of taken
// modulo.
const minCapacity = 16

// slot is a single (key, value) cell. A slot whose key equals the table's
// clear value is empty.
type slot[K comparable, V any] struct {
	key K
	val V
}

// Table is an open-addressing hash table with linear probing and
// backward-shift deletion. See the package documentation for the slot and
// probing model.
type Table[K comparable, V any] struct {
	slots  []slot[K, V]
	length int
	clear  K
	hash   func(K) uint64
}

// New creates an empty table using the given hash function. The clear value
// marking empty slots is the zero value of K; keys equal to it must never be
// inserted.
func New[K comparable, V any](hash func(K) uint64) *Table[K, V] {
	var zero K
	return NewWithClearKey[K, V](hash, zero)
}

// NewWithClearKey creates an empty table whose empty-slot sentinel is clear
// instead of the zero value of K. Use this when the zero value is a
// legitimate key.
func NewWithClearKey[K comparable, V any](hash func(K) uint64, clear K) *Table[K, V] {
	if hash == nil {
		panic(ErrNilHash)
	}
	return &Table[K, V]{clear: clear, hash: hash}
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int {
	return t.length
}

// Cap returns the current slot capacity. Zero until the first insert.
func (t *Table[K, V]) Cap() int {
	return len(t.slots)
}

// Reserve grows the slot array so that n entries fit without another
// resize. Shrinking is not supported.
func (t *Table[K, V]) Reserve(n int) {
	if n > t.length {
		t.grow(n)
	}
}

// Get returns the value stored for key and whether the key is present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if i, ok := t.find(key); ok {
		return t.slots[i].val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.find(key)
	return ok
}

// Set stores value under key, overwriting any previous value. Panics with
// ErrClearKey if key equals the table's clear value.
func (t *Table[K, V]) Set(key K, value V) {
	if key == t.clear {
		panic(ErrClearKey)
	}
	// Grow before the insert that would push length/capacity above 2/3.
	if (t.length+1)*3 > len(t.slots)*2 {
		t.grow(t.length + 1)
	}

	mask := uint64(len(t.slots) - 1)
	i := t.hash(key) & mask
	for n := 0; n <= len(t.slots); n++ {
		s := &t.slots[i]
		if s.key == key {
			s.val = value
			return
		}
		if s.key == t.clear {
			s.key = key
			s.val = value
			t.length++
			return
		}
		i = (i + 1) & mask
	}
	// Unreachable while the load factor invariant holds.
	panic(ErrProbeExhausted)
}

// Remove deletes key and reports whether it was present. The gap is filled
// by shifting subsequent probe-chain entries backward, so no tombstones are
// left behind.
func (t *Table[K, V]) Remove(key K) bool {
	i, ok := t.find(key)
	if !ok {
		return false
	}

	mask := uint64(len(t.slots) - 1)
	j := i
	for {
		j = (j + 1) & mask
		if t.slots[j].key == t.clear {
			break
		}
		// An entry at j may fill the hole at i only if doing so does not
		// move it cyclically before its own ideal probe start r.
		r := t.hash(t.slots[j].key) & mask
		if !inCyclicRange(r, i, j) {
			t.slots[i] = t.slots[j]
			i = j
		}
	}
	var empty slot[K, V]
	empty.key = t.clear
	t.slots[i] = empty
	t.length--
	return true
}

// Clear removes every entry without shrinking the slot array.
func (t *Table[K, V]) Clear() {
	var empty slot[K, V]
	empty.key = t.clear
	for i := range t.slots {
		t.slots[i] = empty
	}
	t.length = 0
}

// Range calls fn for every entry in unspecified (slot) order until fn
// returns false. The table must not be mutated during iteration.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := range t.slots {
		if t.slots[i].key == t.clear {
			continue
		}
		if !fn(t.slots[i].key, t.slots[i].val) {
			return
		}
	}
}

// find returns the slot index holding key.
func (t *Table[K, V]) find(key K) (uint64, bool) {
	if t.length == 0 || key == t.clear {
		return 0, false
	}
	mask := uint64(len(t.slots) - 1)
	i := t.hash(key) & mask
	for n := 0; n < len(t.slots); n++ {
		if t.slots[i].key == key {
			return i, true
		}
		if t.slots[i].key == t.clear {
			return 0, false
		}
		i = (i + 1) & mask
	}
	return 0, false
}

// grow rehashes into a slot array large enough to hold needed entries at or
// below the 2/3 load threshold. The new capacity doubles until the ratio is
// restored and is never below minCapacity.
func (t *Table[K, V]) grow(needed int) {
	newCap := len(t.slots)
	if newCap < minCapacity {
		newCap = minCapacity
	}
	for needed*3 > newCap*2 {
		newCap <<= 1
	}
	if newCap == len(t.slots) {
		return
	}

	old := t.slots
	t.slots = make([]slot[K, V], newCap)
	if isNonZero(t.clear) {
		for i := range t.slots {
			t.slots[i].key = t.clear
		}
	}

	mask := uint64(newCap - 1)
	for oi := range old {
		if old[oi].key == t.clear {
			continue
		}
		i := t.hash(old[oi].key) & mask
		for t.slots[i].key != t.clear {
			i = (i + 1) & mask
		}
		t.slots[i] = old[oi]
	}
}

// inCyclicRange reports whether r lies in the cyclic interval (i, j].
func inCyclicRange(r, i, j uint64) bool {
	if i <= j {
		return r > i && r <= j
	}
	// Interval wraps past the end of the slot array.
	return r > i || r <= j
}

func isNonZero[K comparable](k K) bool {
	var zero K
	return k != zero
}

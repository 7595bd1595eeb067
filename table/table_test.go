package table

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertLookup(t *testing.T) {
	tb := New[string, int](HashString)

	const n = 500
	for i := 0; i < n; i++ {
		tb.Set(fmt.Sprintf("key-%d", i), i)
	}
	require.Equal(t, n, tb.Len())

	for i := 0; i < n; i++ {
		v, ok := tb.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d must be retrievable", i)
		require.Equal(t, i, v)
	}
	_, ok := tb.Get("missing")
	require.False(t, ok)
}

func TestOverwriteKeepsLastValue(t *testing.T) {
	tb := New[string, int](HashString)
	tb.Set("k", 1)
	tb.Set("k", 2)
	tb.Set("k", 3)

	require.Equal(t, 1, tb.Len(), "overwrites must not grow the table")
	v, _ := tb.Get("k")
	require.Equal(t, 3, v)
}

func TestResizeTrigger(t *testing.T) {
	tb := New[uint64, int](HashUint64)

	for i := 1; i <= 1000; i++ {
		tb.Set(uint64(i), i)

		c := tb.Cap()
		require.GreaterOrEqual(t, c, minCapacity)
		require.Zero(t, c&(c-1), "capacity must stay a power of two, len=%d cap=%d", tb.Len(), c)
		require.LessOrEqual(t, tb.Len()*3, c*2,
			"load factor must never exceed 2/3, len=%d cap=%d", tb.Len(), c)
	}
}

func TestResizeDoublesBeforeCrossingThreshold(t *testing.T) {
	tb := New[uint64, int](HashUint64)
	tb.Set(1, 1)
	require.Equal(t, minCapacity, tb.Cap())

	// Capacity 16 holds 10 entries at 2/3; the 11th insert must grow first.
	for i := uint64(2); i <= 10; i++ {
		tb.Set(i, int(i))
	}
	require.Equal(t, minCapacity, tb.Cap())

	tb.Set(11, 11)
	require.Equal(t, 2*minCapacity, tb.Cap())
}

func TestDeletePreservesReachability(t *testing.T) {
	// The backward-shift must never orphan an entry behind a cleared slot,
	// for any interleaving of inserts and deletes.
	rng := rand.New(rand.NewSource(1))
	tb := New[uint64, int](HashUint64)
	ref := make(map[uint64]int)

	for op := 0; op < 20000; op++ {
		if rng.Intn(3) != 0 || len(ref) == 0 {
			k := uint64(rng.Intn(2000) + 1)
			tb.Set(k, op)
			ref[k] = op
		} else {
			// Delete a random live key.
			var k uint64
			for k = range ref {
				break
			}
			require.True(t, tb.Remove(k), "live key %d must be removable", k)
			delete(ref, k)
		}
	}

	require.Equal(t, len(ref), tb.Len())
	for k, v := range ref {
		got, ok := tb.Get(k)
		require.True(t, ok, "key %d orphaned by a delete", k)
		require.Equal(t, v, got)
	}
}

func TestDeleteCollidingKeys(t *testing.T) {
	// Force one probe chain: every key hashes to slot 0, so deletion in the
	// middle exercises the cyclic shift decision directly.
	tb := New[uint64, int](func(uint64) uint64 { return 0 })

	for i := uint64(1); i <= 9; i++ {
		tb.Set(i, int(i))
	}
	require.True(t, tb.Remove(4))
	require.True(t, tb.Remove(1))
	require.False(t, tb.Remove(4), "removed key must stay gone")

	for i := uint64(2); i <= 9; i++ {
		if i == 4 {
			continue
		}
		v, ok := tb.Get(i)
		require.True(t, ok, "key %d lost after mid-chain delete", i)
		require.Equal(t, int(i), v)
	}
	require.Equal(t, 7, tb.Len())
}

func TestRemoveMissing(t *testing.T) {
	tb := New[string, int](HashString)
	require.False(t, tb.Remove("nope"))
	tb.Set("a", 1)
	require.False(t, tb.Remove("b"))
	require.Equal(t, 1, tb.Len())
}

func TestClearKeepsCapacity(t *testing.T) {
	tb := New[uint64, int](HashUint64)
	for i := uint64(1); i <= 100; i++ {
		tb.Set(i, int(i))
	}
	c := tb.Cap()

	tb.Clear()
	require.Zero(t, tb.Len())
	require.Equal(t, c, tb.Cap(), "clearing must not shrink the slot array")
	require.False(t, tb.Contains(50))

	tb.Set(1, 1)
	require.Equal(t, 1, tb.Len())
}

func TestReserveAvoidsResizes(t *testing.T) {
	tb := New[uint64, int](HashUint64)
	tb.Reserve(100)
	c := tb.Cap()
	require.Zero(t, c&(c-1))
	require.LessOrEqual(t, 100*3, c*2, "reserved capacity must hold 100 entries")

	for i := uint64(1); i <= 100; i++ {
		tb.Set(i, int(i))
	}
	require.Equal(t, c, tb.Cap(), "no resize expected after Reserve")
}

func TestClearKeyRejected(t *testing.T) {
	tb := New[uint64, int](HashUint64)
	require.PanicsWithValue(t, ErrClearKey, func() {
		tb.Set(0, 1)
	})
}

func TestCustomClearKey(t *testing.T) {
	// A key space that needs the zero value picks another sentinel.
	tb := NewWithClearKey[int, string](HashInt, -1)
	tb.Set(0, "zero")
	tb.Set(1, "one")

	v, ok := tb.Get(0)
	require.True(t, ok)
	require.Equal(t, "zero", v)

	require.PanicsWithValue(t, ErrClearKey, func() {
		tb.Set(-1, "sentinel")
	})
}

func TestRange(t *testing.T) {
	tb := New[string, int](HashString)
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		tb.Set(k, v)
	}

	got := map[string]int{}
	tb.Range(func(k string, v int) bool {
		got[k] = v
		return true
	})
	require.Equal(t, want, got)

	// Early stop.
	seen := 0
	tb.Range(func(string, int) bool {
		seen++
		return false
	})
	require.Equal(t, 1, seen)
}

func TestNilHashRejected(t *testing.T) {
	require.PanicsWithValue(t, ErrNilHash, func() {
		New[string, int](nil)
	})
}

func TestBytesAndStringHashersAgree(t *testing.T) {
	require.Equal(t, HashBytes([]byte("memutils")), HashString("memutils"))
	require.NotEqual(t, HashString("a"), HashString("b"))
}

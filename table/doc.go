// Package table implements a generic open-addressing hash table with linear
// probing and tombstone-free deletion.
//
// # Overview
//
// Table is the map type the rest of this module builds on: the tracking
// allocator records live (address, size) pairs in one, and the allocator
// registry resolves per-task pool instances through another. It is also a
// usable general-purpose container in its own right.
//
// # Slot Model
//
// A slot is empty when its key equals the table's clear value, which defaults
// to the zero value of the key type. This makes emptiness a key comparison
// instead of a separate occupancy bit, at the cost of one reserved key:
//
//	t := table.New[uintptr, int](table.HashUintptr)
//	t.Set(addr, size) // addr 0 would collide with the sentinel
//
// A real key must never equal the clear value; Set panics if one does. Key
// spaces that need the zero value can pick a different sentinel with
// NewWithClearKey.
//
// # Probing and Deletion
//
// Lookup probes linearly from hash(key) mod capacity and stops at the first
// matching or empty slot. Deletion shifts subsequent entries backward into
// the gap instead of writing a tombstone, so probe chains never degrade as
// entries churn. Capacity is always a power of two, at least 16, and the
// load factor is kept at or below 2/3 by growing before an insert would
// cross the threshold.
//
// # Hashing
//
// The hash function is supplied at construction and fixed for the table's
// lifetime. The helpers in hash.go cover the common key shapes (bytes and
// strings via murmur3, integers and addresses via a 64-bit mixer).
//
// # Thread Safety
//
// Tables are not thread-safe. Callers must synchronize access externally.
package table

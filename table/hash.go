package table

import (
	"github.com/TykTechnologies/murmur3"
)

// Hash functions for the common key shapes. Variable-length keys go through
// murmur3; fixed-width integers use a 64-bit finalizer, which is both faster
// than hashing their bytes and just as well distributed.

// HashBytes hashes a byte slice with murmur3.
func HashBytes(b []byte) uint64 {
	h := murmur3.New64()
	h.Write(b) //nolint:errcheck // murmur3 Write cannot fail
	return h.Sum64()
}

// HashString hashes a string with murmur3.
func HashString(s string) uint64 {
	return HashBytes([]byte(s))
}

// HashUint64 mixes a 64-bit integer with the murmur3 finalizer (fmix64).
func HashUint64(v uint64) uint64 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	v *= 0xc4ceb9fe1a85ec53
	v ^= v >> 33
	return v
}

// HashUintptr hashes an address-sized integer. Suitable for pointer keys.
func HashUintptr(v uintptr) uint64 {
	return HashUint64(uint64(v))
}

// HashInt hashes a signed integer.
func HashInt(v int) uint64 {
	return HashUint64(uint64(v))
}

package table

import "errors"

var (
	// ErrClearKey indicates an attempt to insert a key equal to the table's
	// clear value, which is reserved to mark empty slots.
	ErrClearKey = errors.New("table: key equals the clear value")

	// ErrProbeExhausted indicates that an insert probed every slot without
	// finding a home. This cannot happen while the load factor invariant
	// holds and always indicates table corruption.
	ErrProbeExhausted = errors.New("table: probe sequence exhausted on insert")

	// ErrNilHash indicates a table was constructed without a hash function.
	ErrNilHash = errors.New("table: nil hash function")
)

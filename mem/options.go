package mem

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/MartinNowak/memutils/internal/log"
)

// Options tunes an allocator registry and the chains it builds. Values are
// read from MEMUTILS_-prefixed environment variables, so deployments can
// adjust them without a rebuild.
type Options struct {
	// PoolSlabSize is the slab granularity for Pool allocators, in bytes.
	// Requests larger than a slab get a dedicated block.
	PoolSlabSize int `envconfig:"POOL_SLAB_SIZE" default:"65536"`

	// LogAlloc enables per-operation debug logging on the hot paths. Off by
	// default; allocation logging is for diagnosing, not for production.
	LogAlloc bool `envconfig:"LOG_ALLOC" default:"false"`

	// TrackingCapacity seeds the tracking allocator's live-block table.
	TrackingCapacity int `envconfig:"TRACKING_CAPACITY" default:"256"`
}

// LoadOptions reads Options from the environment. Unset variables fall back
// to their defaults; a malformed value is reported and replaced by the
// default rather than failing the process.
func LoadOptions() Options {
	var o Options
	if err := envconfig.Process("memutils", &o); err != nil {
		log.Get().WithError(err).Warn("mem: bad MEMUTILS_ environment, using defaults")
		o = Options{PoolSlabSize: 65536, TrackingCapacity: 256}
	}
	if o.PoolSlabSize < Alignment*2 {
		o.PoolSlabSize = Alignment * 2
	}
	return o
}

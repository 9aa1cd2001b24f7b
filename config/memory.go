package config

import "time"

const (
	// DefaultMaxEntries bounds the in-process tier when no explicit
	// limit is configured.
	DefaultMaxEntries = 50

	// DefaultKeyPrefix namespaces every durable key the cache writes, so
	// Clear can be scoped to cache-owned data in a shared store.
	DefaultKeyPrefix = "tiercache:"
)

type MemoryCfg struct {
	// MaxEntries is the hard bound on the number of entries resident in
	// the memory tier. Inserting beyond it evicts exactly one entry.
	// Example: 50.
	MaxEntries int `yaml:"max_entries"`

	// KeyPrefix is prepended to every key written to the durable tier.
	KeyPrefix string `yaml:"key_prefix"`

	IsTelemetryLogsEnabled bool          `yaml:"stat_logs_enabled"`
	TelemetryLogsInterval  time.Duration `yaml:"stat_logs_interval"`
}

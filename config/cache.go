package config

// Cache groups configuration of all cache subsystems.
// Optional components can be disabled by setting them to nil.
type Cache struct {
	// Memory configures the in-process tier: the entry bound and the
	// durable key namespace, plus periodic stats logging.
	Memory MemoryCfg `yaml:"memory"`

	// Durable configures the persistent tier backing the memory table.
	// If nil, the cache runs memory-only and all durable operations are no-ops.
	Durable *DurableCfg `yaml:"durable"`

	// Sweep configures the background reclamation of expired entries.
	// If nil, expiry is enforced lazily at read time only and dead entries
	// linger until capacity pressure or explicit removal reclaims them.
	Sweep *SweepCfg `yaml:"sweep"`
}

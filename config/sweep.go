package config

import "time"

type SweepCfg struct {
	// Interval defines how often the sweeper scans the memory tier for
	// expired entries. Example: "1m".
	Interval time.Duration `yaml:"interval"`

	// Rate limits the maximum number of sweep passes per second. It only
	// matters when Interval is configured aggressively small; a pass that
	// would exceed the rate waits its turn instead of running hot.
	// Example: 1.
	Rate int `yaml:"rate"`
}

func (cfg *SweepCfg) Enabled() bool {
	return cfg != nil
}

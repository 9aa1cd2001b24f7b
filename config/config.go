package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func (cfg *Cache) AdjustConfig() {
	if cfg.Memory.MaxEntries <= 0 {
		cfg.Memory.MaxEntries = DefaultMaxEntries
	}
	if cfg.Memory.KeyPrefix == "" {
		cfg.Memory.KeyPrefix = DefaultKeyPrefix
	}
	if cfg.Memory.TelemetryLogsInterval <= 0 {
		cfg.Memory.TelemetryLogsInterval = 5 * time.Second
	}

	if cfg.Sweep.Enabled() {
		if cfg.Sweep.Interval <= 0 {
			cfg.Sweep.Interval = time.Minute
		}
		if cfg.Sweep.Rate <= 0 {
			cfg.Sweep.Rate = 1
		}
	}
}

func (cfg *Cache) Validate() error {
	if !cfg.Durable.Enabled() {
		return nil
	}

	switch cfg.Durable.Backend {
	case BackendFile:
		if cfg.Durable.File == nil || cfg.Durable.File.Dir == "" {
			return fmt.Errorf("durable backend %q requires file.dir", BackendFile)
		}
	case BackendRedis:
		if cfg.Durable.Redis == nil || cfg.Durable.Redis.Addr == "" {
			return fmt.Errorf("durable backend %q requires redis.addr", BackendRedis)
		}
	default:
		return fmt.Errorf("unknown durable backend %q", cfg.Durable.Backend)
	}

	return nil
}

func LoadConfig(path string) (*Cache, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Cache
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.AdjustConfig()

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}

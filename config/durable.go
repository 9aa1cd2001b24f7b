package config

import "time"

type Backend string

var (
	BackendFile  Backend = "file"
	BackendRedis Backend = "redis"
)

type DurableCfg struct {
	// Backend selects the durable store implementation.
	Backend Backend `yaml:"backend"`

	// File configures the filesystem-backed store. Required when
	// Backend is "file".
	File *FileCfg `yaml:"file"`

	// Redis configures the Redis-backed store. Required when Backend
	// is "redis".
	Redis *RedisCfg `yaml:"redis"`
}

type FileCfg struct {
	// Dir is the directory holding one blob file per cached key.
	// It is created if it does not exist.
	Dir string `yaml:"dir"`
}

type RedisCfg struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// DialTimeout bounds the initial connection attempt.
	// Example: "5s".
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

func (cfg *DurableCfg) Enabled() bool {
	return cfg != nil
}

package help

import (
	"time"

	"github.com/nithin434/go-tier-cache/config"
)

func MemoryOnlyCfg() *config.Cache {
	c := &config.Cache{
		Memory: config.MemoryCfg{
			MaxEntries: 50,
		},
	}
	c.AdjustConfig()
	return c
}

func FileCfg(dir string) *config.Cache {
	c := MemoryOnlyCfg()
	c.Durable = &config.DurableCfg{
		Backend: config.BackendFile,
		File:    &config.FileCfg{Dir: dir},
	}
	return c
}

func RedisCfg(addr string) *config.Cache {
	c := MemoryOnlyCfg()
	c.Durable = &config.DurableCfg{
		Backend: config.BackendRedis,
		Redis:   &config.RedisCfg{Addr: addr},
	}
	return c
}

func SweepCfg() *config.Cache {
	c := MemoryOnlyCfg()
	c.Sweep = &config.SweepCfg{
		Interval: 20 * time.Millisecond,
		Rate:     1000,
	}
	return c
}

package tests

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	tiercache "github.com/nithin434/go-tier-cache"
	"github.com/nithin434/go-tier-cache/tests/help"
)

type product struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func catalogPage() []product {
	return []product{
		{SKU: "esp32-devkit", Name: "ESP32 DevKit", Price: 799},
		{SKU: "bme280", Name: "BME280 sensor", Price: 349},
	}
}

func TestMemoryOnlyRoundTrip(t *testing.T) {
	cache, err := tiercache.New[[]product](t.Context(), help.MemoryOnlyCfg(), help.Logger())
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	cache.Set(t.Context(), "products:page1", catalogPage(), tiercache.Policy{
		TTL:  tiercache.TTLShort,
		Tier: tiercache.TierBoth,
	})

	got, ok := cache.Get(t.Context(), "products:page1")
	require.True(t, ok)
	require.Equal(t, catalogPage(), got)
}

func TestFileBackedCacheSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := help.FileCfg(dir)

	cache, err := tiercache.New[[]product](t.Context(), cfg, help.Logger())
	require.NoError(t, err)

	cache.Set(t.Context(), "products:page1", catalogPage(), tiercache.Policy{
		TTL:  tiercache.TTLLong,
		Tier: tiercache.TierBoth,
	})
	require.NoError(t, cache.Close())

	// a fresh instance over the same directory promotes the blob back
	reborn, err := tiercache.New[[]product](t.Context(), help.FileCfg(dir), help.Logger())
	require.NoError(t, err)
	defer func() { _ = reborn.Close() }()

	got, ok := reborn.Get(t.Context(), "products:page1")
	require.True(t, ok)
	require.Equal(t, catalogPage(), got)
	require.Equal(t, 1, reborn.Len())
}

func TestRedisBackedCachePromotes(t *testing.T) {
	db := miniredis.RunT(t)

	cache, err := tiercache.New[[]product](t.Context(), help.RedisCfg(db.Addr()), help.Logger())
	require.NoError(t, err)

	cache.Set(t.Context(), "products:page1", catalogPage(), tiercache.Policy{
		TTL:  tiercache.TTLMedium,
		Tier: tiercache.TierDurable,
	})
	require.Equal(t, 0, cache.Len())
	require.NoError(t, cache.Close())

	reborn, err := tiercache.New[[]product](t.Context(), help.RedisCfg(db.Addr()), help.Logger())
	require.NoError(t, err)
	defer func() { _ = reborn.Close() }()

	got, ok := reborn.Get(t.Context(), "products:page1")
	require.True(t, ok)
	require.Equal(t, catalogPage(), got)
	require.Equal(t, 1, reborn.Len())
}

func TestCapacityBoundUnderChurn(t *testing.T) {
	cfg := help.MemoryOnlyCfg()
	cache, err := tiercache.New[[]product](t.Context(), cfg, help.Logger())
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	for i := 0; i < 500; i++ {
		cache.Set(t.Context(), fmt.Sprintf("products:page%d", i), catalogPage(), tiercache.Policy{
			TTL:  tiercache.TTLShort,
			Tier: tiercache.TierMemory,
		})
		require.LessOrEqual(t, cache.Len(), cfg.Memory.MaxEntries)
	}

	require.Equal(t, cfg.Memory.MaxEntries, cache.Len())
}

func TestSweeperReclaimsExpiredEntries(t *testing.T) {
	cache, err := tiercache.New[[]product](t.Context(), help.SweepCfg(), help.Logger())
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	for i := 0; i < 10; i++ {
		cache.Set(t.Context(), fmt.Sprintf("products:page%d", i), catalogPage(), tiercache.Policy{
			TTL:  30 * time.Millisecond,
			Tier: tiercache.TierMemory,
		})
	}
	require.Equal(t, 10, cache.Len())

	deadline := time.NewTimer(5 * time.Second)
	defer deadline.Stop()

	checkEach := time.NewTicker(20 * time.Millisecond)
	defer checkEach.Stop()

	for {
		select {
		case <-deadline.C:
			t.Fatalf("sweeper did not reclaim expired entries; %d left", cache.Len())
		case <-checkEach.C:
			if cache.Len() == 0 {
				return
			}
		}
	}
}

func TestMetricsAccumulate(t *testing.T) {
	cache, err := tiercache.New[[]product](t.Context(), help.MemoryOnlyCfg(), help.Logger())
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	cache.Set(t.Context(), "products:page1", catalogPage(), tiercache.Policy{
		TTL:  tiercache.TTLShort,
		Tier: tiercache.TierMemory,
	})

	_, ok := cache.Get(t.Context(), "products:page1")
	require.True(t, ok)
	_, ok = cache.Get(t.Context(), "products:page2")
	require.False(t, ok)

	memHits, durableHits, misses, _, _, _ := cache.TierMetrics()
	require.Equal(t, int64(1), memHits)
	require.Equal(t, int64(0), durableHits)
	require.Equal(t, int64(1), misses)
}

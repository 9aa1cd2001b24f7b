package tiercache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/nithin434/go-tier-cache/config"
	"github.com/nithin434/go-tier-cache/internal/durable"
	"github.com/nithin434/go-tier-cache/internal/durable/file"
	"github.com/nithin434/go-tier-cache/internal/durable/redis"
	"github.com/nithin434/go-tier-cache/internal/memtier"
	"github.com/nithin434/go-tier-cache/internal/sweeper"
	"github.com/nithin434/go-tier-cache/internal/telemetry"
)

// Cache mediates reads and writes between a bounded in-process table and a
// durable key-value store, so callers never reason about where data
// physically lives. It is strictly safer to call than the uncached read it
// fronts: a miss is a bool, never an error, and durable-tier faults degrade
// to misses instead of propagating.
//
// Construct one instance per value shape at the composition root and pass it
// by reference; there is no package-level singleton.
type Cache[T any] struct {
	cfg       *config.Cache
	logger    *slog.Logger
	clock     clock.Clock
	mem       *memtier.Table[T]
	store     Store
	registry  *keyRegistry
	counters  *counters
	sweeper   sweeper.Sweeper
	telemetry telemetry.Logger
	cls       context.CancelFunc
}

func New[T any](ctx context.Context, cfg *config.Cache, logger *slog.Logger, opts ...Option) (*Cache[T], error) {
	cfg.AdjustConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{clock: clock.New()}
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		var err error
		if store, err = newStore(cfg.Durable); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	c := &Cache[T]{
		cfg:      cfg,
		logger:   logger,
		clock:    o.clock,
		mem:      memtier.NewTable[T](cfg.Memory.MaxEntries),
		store:    store,
		registry: newKeyRegistry(),
		counters: newCounters(),
		cls:      cancel,
	}
	c.sweeper = sweeper.New(ctx, cfg.Sweep, logger, c)
	c.telemetry = telemetry.New(ctx, cfg, logger, c, c.sweeper, cfg.Memory.TelemetryLogsInterval)

	return c, nil
}

// Get resolves key from the fastest tier holding a live value. A hit in
// memory involves no I/O; a live durable hit is promoted into the memory
// tier with its original validity window intact, so the next Get for the
// same key is served without touching the store.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T
	if key == "" {
		return zero, false
	}

	if entry, ok := c.mem.Peek(key); ok {
		if !entry.Expired(c.clock.Now()) {
			c.mem.Touch(key)
			c.counters.memHits.Add(1)
			return entry.Data, true
		}
		// expired entries are skipped, not deleted; the sweeper or the
		// next write reclaims them
		c.counters.expiredSkips.Add(1)
	}

	if entry, ok := c.durableGet(ctx, key); ok {
		c.promote(key, entry)
		c.counters.durableHits.Add(1)
		return entry.Data, true
	}

	c.counters.misses.Add(1)
	return zero, false
}

// Set stamps the entry with the current time and writes it to the tier(s)
// the policy names. The two writes are independent: a durable fault never
// blocks or rolls back the memory write.
func (c *Cache[T]) Set(ctx context.Context, key string, value T, policy Policy) {
	if key == "" {
		return
	}

	now := c.clock.Now()
	entry := memtier.Entry[T]{Data: value, WrittenAt: now, TTL: policy.TTL}

	if policy.Tier.includesMemory() {
		if evictedKey, evicted := c.mem.Set(key, entry); evicted {
			c.counters.evictions.Add(1)
			c.logger.Debug("evicted on insert", "key", evictedKey, "for", key)
		}
	}

	if policy.Tier.includesDurable() {
		c.durableSet(ctx, key, entry)
	}
}

// Remove deletes key from both tiers. Removing an absent key is a no-op.
func (c *Cache[T]) Remove(ctx context.Context, key string) {
	if key == "" {
		return
	}

	c.mem.Del(key)
	c.registry.remove(key)
	if err := c.store.RemoveItem(ctx, c.storageKey(key)); err != nil {
		c.durableFault("remove", key, err)
	}
}

// Clear empties the memory tier and removes from the durable tier exactly
// the keys this instance has written there. Foreign data sharing the store
// is left alone.
func (c *Cache[T]) Clear(ctx context.Context) {
	c.mem.Clear()
	for _, key := range c.registry.drain() {
		if err := c.store.RemoveItem(ctx, c.storageKey(key)); err != nil {
			c.durableFault("clear", key, err)
		}
	}
}

func (c *Cache[T]) Len() int { return c.mem.Len() }

// TierMetrics reports cumulative counters since construction.
func (c *Cache[T]) TierMetrics() (memHits, durableHits, misses, expiredSkips, evictions, durableFaults int64) {
	return c.counters.snapshot()
}

// PurgeExpired removes every expired entry from the memory tier and returns
// the number removed. The sweeper calls it periodically; callers may too.
func (c *Cache[T]) PurgeExpired() int {
	return c.mem.PurgeExpired(c.clock.Now())
}

func (c *Cache[T]) Close() error {
	c.cls()
	return c.store.Close()
}

/**
 * Private API.
 */

func (c *Cache[T]) durableGet(ctx context.Context, key string) (memtier.Entry[T], bool) {
	blob, err := c.store.GetItem(ctx, c.storageKey(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.durableFault("get", key, err)
		}
		return memtier.Entry[T]{}, false
	}

	value, writtenAt, ttl, err := durable.Decode[T](blob)
	if err != nil {
		c.durableFault("decode", key, err)
		return memtier.Entry[T]{}, false
	}

	entry := memtier.Entry[T]{Data: value, WrittenAt: writtenAt, TTL: ttl}
	if entry.Expired(c.clock.Now()) {
		return memtier.Entry[T]{}, false
	}
	return entry, true
}

func (c *Cache[T]) durableSet(ctx context.Context, key string, entry memtier.Entry[T]) {
	blob, err := durable.Encode(entry.Data, entry.WrittenAt, entry.TTL)
	if err != nil {
		c.durableFault("encode", key, err)
		return
	}

	if err = c.store.SetItem(ctx, c.storageKey(key), blob, entry.TTL); err != nil {
		c.durableFault("set", key, err)
		return
	}
	c.registry.add(key)
}

func (c *Cache[T]) promote(key string, entry memtier.Entry[T]) {
	if evictedKey, evicted := c.mem.Set(key, entry); evicted {
		c.counters.evictions.Add(1)
		c.logger.Debug("evicted on promotion", "key", evictedKey, "for", key)
	}
}

func (c *Cache[T]) storageKey(key string) string {
	return c.cfg.Memory.KeyPrefix + key
}

func (c *Cache[T]) durableFault(op, key string, err error) {
	c.counters.durableFaults.Add(1)
	c.logger.Debug("durable tier fault", "op", op, "key", key, "error", err)
}

func newStore(cfg *config.DurableCfg) (Store, error) {
	if !cfg.Enabled() {
		return durable.NewNoOpStore(), nil
	}

	switch cfg.Backend {
	case config.BackendFile:
		return file.NewStore(cfg.File.Dir)
	case config.BackendRedis:
		return redis.NewStore(cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown durable backend %q", cfg.Backend)
	}
}

package tiercache

import "sync/atomic"

type counters struct {
	memHits       atomic.Int64
	durableHits   atomic.Int64
	misses        atomic.Int64
	expiredSkips  atomic.Int64
	evictions     atomic.Int64
	durableFaults atomic.Int64
}

func newCounters() *counters {
	return &counters{
		memHits:       atomic.Int64{},
		durableHits:   atomic.Int64{},
		misses:        atomic.Int64{},
		expiredSkips:  atomic.Int64{},
		evictions:     atomic.Int64{},
		durableFaults: atomic.Int64{},
	}
}

func (c *counters) snapshot() (memHits, durableHits, misses, expiredSkips, evictions, durableFaults int64) {
	return c.memHits.Load(), c.durableHits.Load(), c.misses.Load(),
		c.expiredSkips.Load(), c.evictions.Load(), c.durableFaults.Load()
}

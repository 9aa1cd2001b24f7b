package telemetry

import "github.com/nithin434/go-tier-cache/internal/sweeper"

// Tiers is the metrics surface of the cache itself.
type Tiers interface {
	TierMetrics() (memHits, durableHits, misses, expiredSkips, evictions, durableFaults int64)
	Len() int
}

type sampler struct {
	tiers   Tiers
	sweeper sweeper.Sweeper
}

func newSampler(t Tiers, s sweeper.Sweeper) sampler {
	return sampler{tiers: t, sweeper: s}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	memHits       uint64
	durableHits   uint64
	misses        uint64
	expiredSkips  uint64
	evictions     uint64
	durableFaults uint64

	sweepScans   uint64
	sweepRemoved uint64
}

func (s sampler) snapshot() snapshot {
	memHits, durableHits, misses, skips, evictions, faults := s.tiers.TierMetrics()
	scans, removed := s.sweeper.SweeperMetrics()

	return snapshot{
		memHits:       uint64(max(memHits, 0)),
		durableHits:   uint64(max(durableHits, 0)),
		misses:        uint64(max(misses, 0)),
		expiredSkips:  uint64(max(skips, 0)),
		evictions:     uint64(max(evictions, 0)),
		durableFaults: uint64(max(faults, 0)),

		sweepScans:   uint64(max(scans, 0)),
		sweepRemoved: uint64(max(removed, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		memHits:       delta(prev.memHits, cur.memHits),
		durableHits:   delta(prev.durableHits, cur.durableHits),
		misses:        delta(prev.misses, cur.misses),
		expiredSkips:  delta(prev.expiredSkips, cur.expiredSkips),
		evictions:     delta(prev.evictions, cur.evictions),
		durableFaults: delta(prev.durableFaults, cur.durableFaults),

		sweepScans:   delta(prev.sweepScans, cur.sweepScans),
		sweepRemoved: delta(prev.sweepRemoved, cur.sweepRemoved),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur < prev {
		return cur
	}
	return cur - prev
}

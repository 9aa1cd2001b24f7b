package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nithin434/go-tier-cache/internal/sweeper"
)

type fakeTiers struct {
	memHits, durableHits, misses, skips, evictions, faults int64
	entries                                                int
}

func (f *fakeTiers) TierMetrics() (int64, int64, int64, int64, int64, int64) {
	return f.memHits, f.durableHits, f.misses, f.skips, f.evictions, f.faults
}

func (f *fakeTiers) Len() int { return f.entries }

func TestSamplerSnapshotsCumulativeCounters(t *testing.T) {
	tiers := &fakeTiers{memHits: 10, durableHits: 2, misses: 3, faults: 1}
	s := newSampler(tiers, sweeper.NoOpSweeper{})

	snap := s.snapshot()
	require.Equal(t, uint64(10), snap.memHits)
	require.Equal(t, uint64(2), snap.durableHits)
	require.Equal(t, uint64(3), snap.misses)
	require.Equal(t, uint64(1), snap.durableFaults)
	require.Zero(t, snap.sweepScans)
}

func TestDeltaSnapshotYieldsPerIntervalValues(t *testing.T) {
	prev := snapshot{memHits: 10, misses: 3}
	cur := snapshot{memHits: 25, misses: 4}

	d := deltaSnapshot(prev, cur)
	require.Equal(t, uint64(15), d.memHits)
	require.Equal(t, uint64(1), d.misses)
}

func TestDeltaTreatsCounterResetAsFreshValue(t *testing.T) {
	d := delta(100, 7)
	require.Equal(t, uint64(7), d)
}

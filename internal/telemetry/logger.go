package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/nithin434/go-tier-cache/config"
	"github.com/nithin434/go-tier-cache/internal/sweeper"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Cache
	logger   *slog.Logger
	tiers    Tiers
	sweeper  sweeper.Sweeper
	interval time.Duration
}

func New(
	ctx context.Context,
	cfg *config.Cache,
	logger *slog.Logger,
	tiers Tiers,
	sweeper sweeper.Sweeper,
	interval time.Duration,
) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	return (&Logs{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		tiers:    tiers,
		sweeper:  sweeper,
		interval: interval,
	}).run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

func (l *Logs) Close() error {
	l.cancel()
	return nil
}

func (l *Logs) run() *Logs {
	if l.cfg != nil && l.cfg.Memory.IsTelemetryLogsEnabled {
		go l.loop()
	}
	return l
}

func (l *Logs) loop() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	s := newSampler(l.tiers, l.sweeper)
	prev := s.snapshot()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := s.snapshot()
			d := deltaSnapshot(prev, cur)
			prev = cur

			common := []any{"interval", l.interval.String()}

			l.logger.Info("tiers",
				append(common,
					"mem_hits", int64(d.memHits),
					"durable_hits", int64(d.durableHits),
					"misses", int64(d.misses),
					"expired_skips", int64(d.expiredSkips),
					"evictions", int64(d.evictions),
					"durable_faults", int64(d.durableFaults),
				)...,
			)

			if l.cfg.Sweep.Enabled() {
				l.logger.Info("sweeper",
					append(common,
						"scans", int64(d.sweepScans),
						"removed", int64(d.sweepRemoved),
					)...,
				)
			}

			l.logger.Info("storage",
				append(common,
					"entries", l.tiers.Len(),
					"max_entries", l.cfg.Memory.MaxEntries,
				)...,
			)
		}
	}
}

package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/nithin434/go-tier-cache/config"
	"github.com/nithin434/go-tier-cache/internal/shared/rate"
)

// Purger is the slice of the cache the sweeper needs: a single pass that
// removes expired entries and reports how many went.
type Purger interface {
	PurgeExpired() (removed int)
}

type Sweeper interface {
	SweeperMetrics() (scans, removed int64)
	Close() error
}

// SweepWorker periodically reclaims expired entries from the memory tier so
// dead data does not linger between reads in a long-lived process. Lazy
// expiry at read time stays authoritative; the sweeper only returns memory.
type SweepWorker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.SweepCfg
	logger   *slog.Logger
	purger   Purger
	jitter   *rate.Jitter
	counters *sweeperCounters
}

func New(
	ctx context.Context,
	cfg *config.SweepCfg,
	logger *slog.Logger,
	purger Purger,
) Sweeper {
	if !cfg.Enabled() {
		return &NoOpSweeper{}
	}

	ctx, cancel := context.WithCancel(ctx)
	return (&SweepWorker{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		purger:   purger,
		jitter:   rate.NewJitter(ctx, cfg.Rate),
		counters: newSweeperCounters(),
	}).run()
}

func (w *SweepWorker) SweeperMetrics() (scans, removed int64) {
	return w.counters.snapshot()
}

func (w *SweepWorker) Close() error {
	w.cancel()
	return nil
}

func (w *SweepWorker) run() *SweepWorker {
	w.logger.Info("sweeper is running", "interval", w.cfg.Interval.String(), "rate", w.cfg.Rate)

	go func() {
		defer w.logger.Info("sweeper is stopped")

		tick := time.NewTicker(w.cfg.Interval)
		defer tick.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-tick.C:
				w.jitter.Take()
				w.counters.scans.Add(1)
				if removed := w.purger.PurgeExpired(); removed > 0 {
					w.counters.removed.Add(int64(removed))
				}
			}
		}
	}()

	return w
}

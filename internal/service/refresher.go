package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ckbpulse/ckbpulse-backend/internal/clock"
)

// Refresher warms the snapshot cache at process start and optionally keeps
// it fresh on an interval, so external callers rarely pay refresh latency.
type Refresher struct {
	logger   *zap.Logger
	source   SnapshotSource
	sleep    func(context.Context, time.Duration) error
	interval time.Duration
}

// NewRefresher builds a Refresher. A non-positive interval limits it to the
// startup warm-up.
func NewRefresher(source SnapshotSource, logger *zap.Logger, interval time.Duration) (*Refresher, error) {
	if source == nil {
		return nil, errors.New("snapshot source is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Refresher{
		logger:   logger,
		source:   source,
		sleep:    clock.Sleep,
		interval: interval,
	}, nil
}

// Run performs the warm-up refresh and then the periodic loop until the
// context is canceled. A failed refresh is logged and retried next round,
// never fatal.
func (r *Refresher) Run(ctx context.Context) error {
	if snapshot, err := r.source.GetSnapshot(ctx); err != nil {
		r.logger.Warn("warm-up refresh failed", zap.Error(err))
	} else {
		r.logger.Info("cache warmed", zap.Uint64("tip", snapshot.TipHeight))
	}

	if r.interval <= 0 {
		return nil
	}

	for {
		if err := r.sleep(ctx, r.interval); err != nil {
			return err
		}
		if _, err := r.source.GetSnapshot(ctx); err != nil {
			r.logger.Warn("periodic refresh failed", zap.Error(err))
		}
	}
}

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/verdantgoods/storefront/pkg/utils"
)

type CartCleaner interface {
	CleanupExpiredCarts(ctx context.Context) (int64, error)
}

// reaper periodically deletes abandoned guest carts. Sweeps are
// idempotent and need no coordination with live traffic.
type reaper struct {
	logger   *slog.Logger
	cleaner  CartCleaner
	interval time.Duration
}

func NewReaper(logger *slog.Logger, cleaner CartCleaner, interval time.Duration) *reaper {
	return &reaper{
		logger:   logger.With(slog.String("service", "reaper")),
		cleaner:  cleaner,
		interval: interval,
	}
}

// Start runs the sweep loop until the context is cancelled.
func (r *reaper) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *reaper) sweep(ctx context.Context) {
	var count int64
	fn := func() error {
		var err error
		count, err = r.cleaner.CleanupExpiredCarts(ctx)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: time.Second,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, context.Canceled); err != nil {
		r.logger.ErrorContext(ctx, "expired cart sweep failed", slog.Any("error", err))
		return
	}

	cartsReaped.Add(float64(count))
	if count > 0 {
		r.logger.InfoContext(ctx, "cleaned up expired guest carts", slog.Int64("count", count))
	}
}

package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/verdantgoods/storefront/internal/service"
	mocks "github.com/verdantgoods/storefront/internal/service/mocks"
)

func TestReaper_Start(t *testing.T) {
	t.Run("sweeps on every tick until cancelled", func(t *testing.T) {
		cleaner := mocks.NewMockCartCleaner(t)

		var sweeps atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		cleaner.EXPECT().
			CleanupExpiredCarts(mock.Anything).
			RunAndReturn(func(ctx context.Context) (int64, error) {
				if sweeps.Add(1) >= 2 {
					cancel()
				}
				return 1, nil
			})

		r := service.NewReaper(newTestLogger(), cleaner, 5*time.Millisecond)

		done := make(chan error, 1)
		go func() { done <- r.Start(ctx) }()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("reaper did not stop after cancel")
		}
		assert.GreaterOrEqual(t, sweeps.Load(), int32(2))
	})

	t.Run("stops without sweeping when cancelled immediately", func(t *testing.T) {
		cleaner := mocks.NewMockCartCleaner(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := service.NewReaper(newTestLogger(), cleaner, time.Hour)
		assert.NoError(t, r.Start(ctx))
	})
}

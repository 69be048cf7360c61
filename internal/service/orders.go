package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/pkg/utils"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// orderService serves a user's order history. Orders are immutable
// snapshots, which makes them safe to cache.
type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
	cache  Cache
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "orders")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *orderService) ListOrders(ctx context.Context, userID int64) ([]entities.Order, error) {
	orders, err := s.repo.ListOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns one of the user's orders with its items. Orders
// belonging to somebody else (or to a guest checkout) are reported as
// not found rather than forbidden.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID int64) (entities.Order, error) {
	key := orderCacheKey(orderID)

	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return s.authorize(order, userID)
		}
		s.logger.WarnContext(ctx, "failed to unmarshal cached order", slog.Int64("order_id", orderID))
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(key, data)
	} else {
		s.logger.ErrorContext(ctx, "failed to marshal order for cache",
			slog.Int64("order_id", orderID), slog.Any("error", err))
	}

	return s.authorize(order, userID)
}

func (s *orderService) authorize(order entities.Order, userID int64) (entities.Order, error) {
	if order.UserID == nil || *order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func orderCacheKey(orderID int64) string {
	return "order:" + strconv.FormatInt(orderID, 10)
}

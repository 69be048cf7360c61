package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/service"
	mocks "github.com/verdantgoods/storefront/internal/service/mocks"
)

func TestOrderService_GetOrder(t *testing.T) {
	order := entities.Order{ID: 7, UserID: ptr(int64(42)), PaymentIntentID: "pi_1"}
	guestOrder := entities.Order{ID: 8, PaymentIntentID: "pi_2"}

	testCases := []struct {
		name         string
		userID       int64
		orderID      int64
		mockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name:    "cache miss loads from repo and caches",
			userID:  42,
			orderID: 7,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order:7").Return(nil, false)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)
				cache.EXPECT().Set("order:7", mock.Anything)
			},
		},
		{
			name:    "cache hit skips the repo",
			userID:  42,
			orderID: 7,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				data, err := order.Marshal()
				require.NoError(t, err)
				cache.EXPECT().Get("order:7").Return(data, true)
			},
		},
		{
			name:    "not found",
			userID:  42,
			orderID: 9,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order:9").Return(nil, false)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(9)).
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "someone else's order is not found",
			userID:  1,
			orderID: 7,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order:7").Return(nil, false)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)
				cache.EXPECT().Set("order:7", mock.Anything)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "guest order is invisible to users",
			userID:  42,
			orderID: 8,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order:8").Return(nil, false)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(8)).Return(guestOrder, nil)
				cache.EXPECT().Set("order:8", mock.Anything)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)

			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(newTestLogger(), repo, cache)
			got, err := svc.GetOrder(context.Background(), tc.userID, tc.orderID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.orderID, got.ID)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Run("returns the user's orders", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		orders := []entities.Order{
			{ID: 7, UserID: ptr(int64(42))},
			{ID: 9, UserID: ptr(int64(42))},
		}
		repo.EXPECT().ListOrdersByUserID(mock.Anything, int64(42)).Return(orders, nil)

		svc := service.NewOrderService(newTestLogger(), repo, cache)
		got, err := svc.ListOrders(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})
}

package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/service"
	mocks "github.com/verdantgoods/storefront/internal/service/mocks"
	txMocks "github.com/verdantgoods/storefront/pkg/trm/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).
		Maybe()
	return tx
}

func ptr[T any](v T) *T { return &v }

func TestCartService_GetCurrentCart(t *testing.T) {
	dbError := errors.New("db error")

	userCart := entities.Cart{ID: 1, UserID: ptr(int64(42))}
	guestCart := entities.Cart{ID: 2, SessionID: ptr("token")}

	testCases := []struct {
		name         string
		identity     entities.Identity
		mockBehavior func(carts *mocks.MockCartRepo)
		wantCartID   int64
		wantMerged   bool
		wantErr      error
	}{
		{
			name:     "authenticated user without session gets user cart",
			identity: entities.Identity{UserID: 42},
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().UpsertUserCart(mock.Anything, int64(42)).Return(userCart, nil)
				carts.EXPECT().ListItems(mock.Anything, int64(1)).Return(nil, nil)
			},
			wantCartID: 1,
		},
		{
			name:     "guest gets session cart",
			identity: entities.Identity{SessionToken: "token"},
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().UpsertGuestCart(mock.Anything, "token", mock.Anything).Return(guestCart, nil)
				carts.EXPECT().ListItems(mock.Anything, int64(2)).Return(nil, nil)
			},
			wantCartID: 2,
		},
		{
			name:     "guest without session token is rejected",
			identity: entities.Identity{},
			mockBehavior: func(carts *mocks.MockCartRepo) {
			},
			wantErr: entities.ErrCartNotFound,
		},
		{
			name:     "user with session but no guest cart skips merge",
			identity: entities.Identity{UserID: 42, SessionToken: "token"},
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().UpsertUserCart(mock.Anything, int64(42)).Return(userCart, nil)
				carts.EXPECT().GetGuestCartBySessionID(mock.Anything, "token").
					Return(entities.Cart{}, entities.ErrCartNotFound)
				carts.EXPECT().ListItems(mock.Anything, int64(1)).Return(nil, nil)
			},
			wantCartID: 1,
			wantMerged: false,
		},
		{
			name:     "repo failure surfaces",
			identity: entities.Identity{UserID: 42},
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().UpsertUserCart(mock.Anything, int64(42)).Return(entities.Cart{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartRepo(t)
			products := mocks.NewMockProductRepo(t)
			tx := passthroughTx(t)

			tc.mockBehavior(carts)

			svc := service.NewCartService(newTestLogger(), tx, carts, products, time.Hour)
			cart, merged, err := svc.GetCurrentCart(context.Background(), tc.identity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCartID, cart.ID)
			assert.Equal(t, tc.wantMerged, merged)
		})
	}
}

func TestCartService_GetCurrentCart_MergesGuestCart(t *testing.T) {
	userCart := entities.Cart{ID: 1, UserID: ptr(int64(42))}
	guestCart := entities.Cart{ID: 2, SessionID: ptr("token")}
	guestItems := []entities.CartItem{
		{CartID: 2, ProductID: 10, Quantity: 1},
		{CartID: 2, ProductID: 11, Quantity: 3},
	}
	mergedItems := []entities.CartItem{
		{CartID: 1, ProductID: 10, Quantity: 3},
		{CartID: 1, ProductID: 11, Quantity: 3},
	}

	carts := mocks.NewMockCartRepo(t)
	products := mocks.NewMockProductRepo(t)
	tx := passthroughTx(t)

	carts.EXPECT().UpsertUserCart(mock.Anything, int64(42)).Return(userCart, nil)
	carts.EXPECT().GetGuestCartBySessionID(mock.Anything, "token").Return(guestCart, nil)
	carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
	carts.EXPECT().LockCart(mock.Anything, int64(2)).Return(nil)
	carts.EXPECT().ListItems(mock.Anything, int64(2)).Return(guestItems, nil)
	carts.EXPECT().AddItemQuantity(mock.Anything, int64(1), int64(10), 1).
		Return(entities.CartItem{CartID: 1, ProductID: 10, Quantity: 3}, nil)
	carts.EXPECT().AddItemQuantity(mock.Anything, int64(1), int64(11), 3).
		Return(entities.CartItem{CartID: 1, ProductID: 11, Quantity: 3}, nil)
	carts.EXPECT().DeleteCart(mock.Anything, int64(2)).Return(nil)
	carts.EXPECT().ListItems(mock.Anything, int64(1)).Return(mergedItems, nil)

	svc := service.NewCartService(newTestLogger(), tx, carts, products, time.Hour)
	cart, merged, err := svc.GetCurrentCart(context.Background(), entities.Identity{UserID: 42, SessionToken: "token"})

	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, mergedItems, cart.Items)
}

func TestCartService_GetCurrentCart_MergeLocksBothCarts(t *testing.T) {
	userCart := entities.Cart{ID: 9, UserID: ptr(int64(42))}
	guestCart := entities.Cart{ID: 3, SessionID: ptr("token")}

	carts := mocks.NewMockCartRepo(t)
	products := mocks.NewMockProductRepo(t)
	tx := passthroughTx(t)

	var locked []int64
	carts.EXPECT().UpsertUserCart(mock.Anything, int64(42)).Return(userCart, nil)
	carts.EXPECT().GetGuestCartBySessionID(mock.Anything, "token").Return(guestCart, nil)
	carts.EXPECT().LockCart(mock.Anything, mock.Anything).
		Run(func(_ context.Context, cartID int64) {
			locked = append(locked, cartID)
		}).
		Return(nil).Times(2)
	carts.EXPECT().ListItems(mock.Anything, int64(3)).Return(nil, nil)
	carts.EXPECT().DeleteCart(mock.Anything, int64(3)).Return(nil)
	carts.EXPECT().ListItems(mock.Anything, int64(9)).Return(nil, nil)

	svc := service.NewCartService(newTestLogger(), tx, carts, products, time.Hour)
	_, merged, err := svc.GetCurrentCart(context.Background(), entities.Identity{UserID: 42, SessionToken: "token"})

	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, []int64{3, 9}, locked)
}

func TestCartService_AddItem(t *testing.T) {
	dbError := errors.New("db error")
	product := entities.Product{ID: 10, Name: "Basil"}

	testCases := []struct {
		name         string
		quantity     int
		mockBehavior func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo)
		wantQuantity int
		wantErr      error
	}{
		{
			name:     "OK",
			quantity: 2,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				products.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil)
				carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
				carts.EXPECT().AddItemQuantity(mock.Anything, int64(1), int64(10), 2).
					Return(entities.CartItem{CartID: 1, ProductID: 10, Quantity: 2}, nil)
				carts.EXPECT().TouchCart(mock.Anything, int64(1)).Return(nil)
			},
			wantQuantity: 2,
		},
		{
			name:     "accumulates onto existing line",
			quantity: 2,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				products.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil)
				carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
				carts.EXPECT().AddItemQuantity(mock.Anything, int64(1), int64(10), 2).
					Return(entities.CartItem{CartID: 1, ProductID: 10, Quantity: 5}, nil)
				carts.EXPECT().TouchCart(mock.Anything, int64(1)).Return(nil)
			},
			wantQuantity: 5,
		},
		{
			name:         "zero quantity rejected",
			quantity:     0,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:     "unknown product rejected",
			quantity: 1,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				products.EXPECT().GetProductByID(mock.Anything, int64(10)).
					Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:     "repo failure surfaces",
			quantity: 1,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				products.EXPECT().GetProductByID(mock.Anything, int64(10)).Return(product, nil)
				carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartRepo(t)
			products := mocks.NewMockProductRepo(t)
			tx := passthroughTx(t)

			tc.mockBehavior(carts, products)

			svc := service.NewCartService(newTestLogger(), tx, carts, products, time.Hour)
			item, err := svc.AddItem(context.Background(), 1, 10, tc.quantity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantQuantity, item.Quantity)
			require.NotNil(t, item.Product)
			assert.Equal(t, product.Name, item.Product.Name)
		})
	}
}

func TestCartService_UpdateItem(t *testing.T) {
	testCases := []struct {
		name         string
		quantity     int
		mockBehavior func(carts *mocks.MockCartRepo)
		wantRemoved  bool
		wantErr      error
	}{
		{
			name:     "sets quantity",
			quantity: 4,
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
				carts.EXPECT().SetItemQuantity(mock.Anything, int64(1), int64(10), 4).
					Return(entities.CartItem{CartID: 1, ProductID: 10, Quantity: 4}, nil)
				carts.EXPECT().TouchCart(mock.Anything, int64(1)).Return(nil)
			},
		},
		{
			name:     "zero removes the line",
			quantity: 0,
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
				carts.EXPECT().DeleteItem(mock.Anything, int64(1), int64(10)).Return(true, nil)
				carts.EXPECT().TouchCart(mock.Anything, int64(1)).Return(nil)
			},
			wantRemoved: true,
		},
		{
			name:         "negative rejected",
			quantity:     -1,
			mockBehavior: func(carts *mocks.MockCartRepo) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:     "missing line",
			quantity: 3,
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
				carts.EXPECT().SetItemQuantity(mock.Anything, int64(1), int64(10), 3).
					Return(entities.CartItem{}, entities.ErrCartItemNotFound)
			},
			wantErr: entities.ErrCartItemNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartRepo(t)
			products := mocks.NewMockProductRepo(t)
			tx := passthroughTx(t)

			tc.mockBehavior(carts)

			svc := service.NewCartService(newTestLogger(), tx, carts, products, time.Hour)
			item, removed, err := svc.UpdateItem(context.Background(), 1, 10, tc.quantity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRemoved, removed)
			if !removed {
				assert.Equal(t, tc.quantity, item.Quantity)
			}
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Run("removing absent line is a no-op", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := passthroughTx(t)

		carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
		carts.EXPECT().DeleteItem(mock.Anything, int64(1), int64(99)).Return(false, nil)
		carts.EXPECT().TouchCart(mock.Anything, int64(1)).Return(nil)

		svc := service.NewCartService(newTestLogger(), tx, carts, products, time.Hour)
		assert.NoError(t, svc.RemoveItem(context.Background(), 1, 99))
	})
}

func TestCartService_CleanupExpiredCarts(t *testing.T) {
	t.Run("reports deleted count", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := passthroughTx(t)

		carts.EXPECT().DeleteExpiredGuestCarts(mock.Anything, mock.Anything).Return(7, nil)

		svc := service.NewCartService(newTestLogger(), tx, carts, products, time.Hour)
		count, err := svc.CleanupExpiredCarts(context.Background())

		require.NoError(t, err)
		assert.EqualValues(t, 7, count)
	})
}

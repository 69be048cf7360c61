package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/payment"
	"github.com/verdantgoods/storefront/internal/pricing"
	"github.com/verdantgoods/storefront/internal/service"
	mocks "github.com/verdantgoods/storefront/internal/service/mocks"
)

var testPricing = pricing.Config{
	FreeShippingThreshold: decimal.NewFromInt(100),
	FlatShippingRate:      decimal.RequireFromString("4.99"),
	TaxRate:               decimal.RequireFromString("0.20"),
}

// cart of 2 x 20.00: subtotal 40.00, shipping 4.99, tax 8.00, total 52.99
func testCart() entities.Cart {
	return entities.Cart{
		ID:     1,
		UserID: ptr(int64(42)),
		Items: []entities.CartItem{
			{
				CartID:    1,
				ProductID: 10,
				Quantity:  2,
				Product:   &entities.Product{ID: 10, Name: "Basil", Cost: decimal.NewFromInt(20)},
			},
		},
	}
}

const testTotalPence = 5299

type checkoutAPI interface {
	Summary(ctx context.Context, identity entities.Identity) (entities.Cart, pricing.Summary, error)
	CreatePaymentIntent(ctx context.Context, identity entities.Identity) (payment.Intent, error)
	ConfirmPayment(ctx context.Context, identity entities.Identity, req service.ConfirmPaymentRequest) (entities.Order, error)
}

func newCheckoutService(
	t *testing.T,
	cartMgr *mocks.MockCartManager,
	carts *mocks.MockCartRepo,
	orders *mocks.MockOrderRepo,
	provider *mocks.MockPaymentProvider,
	publisher *mocks.MockEventPublisher,
) checkoutAPI {
	return service.NewCheckoutService(
		newTestLogger(), passthroughTx(t), cartMgr, carts, orders,
		provider, publisher, testPricing, "gbp",
	)
}

func TestCheckoutService_CreatePaymentIntent(t *testing.T) {
	identity := entities.Identity{UserID: 42}

	staleCart := testCart()
	staleCart.Items = append(staleCart.Items, entities.CartItem{CartID: 1, ProductID: 99, Quantity: 1})

	testCases := []struct {
		name         string
		mockBehavior func(cartMgr *mocks.MockCartManager, provider *mocks.MockPaymentProvider)
		wantAmount   int64
		wantErr      error
	}{
		{
			name: "charges the trusted total",
			mockBehavior: func(cartMgr *mocks.MockCartManager, provider *mocks.MockPaymentProvider) {
				cartMgr.EXPECT().GetCurrentCart(mock.Anything, identity).Return(testCart(), false, nil)
				provider.EXPECT().
					CreateIntent(mock.Anything, payment.CreateIntentParams{
						Amount: testTotalPence, Currency: "gbp", CartID: 1, UserID: 42,
					}).
					Return(payment.Intent{ID: "pi_1", ClientSecret: "secret", Amount: testTotalPence}, nil)
			},
			wantAmount: testTotalPence,
		},
		{
			name: "empty cart blocked",
			mockBehavior: func(cartMgr *mocks.MockCartManager, provider *mocks.MockPaymentProvider) {
				cartMgr.EXPECT().GetCurrentCart(mock.Anything, identity).
					Return(entities.Cart{ID: 1}, false, nil)
			},
			wantErr: entities.ErrEmptyCart,
		},
		{
			name: "stale line blocks checkout",
			mockBehavior: func(cartMgr *mocks.MockCartManager, provider *mocks.MockPaymentProvider) {
				cartMgr.EXPECT().GetCurrentCart(mock.Anything, identity).Return(staleCart, false, nil)
			},
			wantErr: entities.ErrStaleCart,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cartMgr := mocks.NewMockCartManager(t)
			carts := mocks.NewMockCartRepo(t)
			orders := mocks.NewMockOrderRepo(t)
			provider := mocks.NewMockPaymentProvider(t)
			publisher := mocks.NewMockEventPublisher(t)

			tc.mockBehavior(cartMgr, provider)

			svc := newCheckoutService(t, cartMgr, carts, orders, provider, publisher)
			intent, err := svc.CreatePaymentIntent(context.Background(), identity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAmount, intent.Amount)
		})
	}
}

func TestCheckoutService_ConfirmPayment(t *testing.T) {
	identity := entities.Identity{UserID: 42}
	req := service.ConfirmPaymentRequest{
		PaymentIntentID: "pi_1",
		PaymentType:     "card",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
	}
	succeeded := payment.Intent{ID: "pi_1", Amount: testTotalPence, Status: payment.StatusSucceeded}
	dbError := errors.New("db error")

	expectFreshCart := func(cartMgr *mocks.MockCartManager, carts *mocks.MockCartRepo) {
		cart := testCart()
		cartMgr.EXPECT().GetCurrentCart(mock.Anything, identity).Return(cart, false, nil)
		carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
		carts.EXPECT().ListItems(mock.Anything, int64(1)).Return(cart.Items, nil)
	}

	type deps struct {
		cartMgr   *mocks.MockCartManager
		carts     *mocks.MockCartRepo
		orders    *mocks.MockOrderRepo
		provider  *mocks.MockPaymentProvider
		publisher *mocks.MockEventPublisher
	}

	testCases := []struct {
		name         string
		mockBehavior func(d deps)
		wantOrderID  int64
		wantErr      error
	}{
		{
			name: "creates the order and clears the cart",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.provider.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil)
				expectFreshCart(d.cartMgr, d.carts)
				d.orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.PaymentIntentID == "pi_1" &&
							o.Status == entities.OrderStatusSuccessful &&
							o.GrandTotal.Equal(decimal.RequireFromString("52.99")) &&
							o.UserID != nil && *o.UserID == 42
					})).
					Return(entities.Order{ID: 7, PaymentIntentID: "pi_1", GrandTotal: decimal.RequireFromString("52.99")}, nil)
				d.orders.EXPECT().CreateOrderItems(mock.Anything, int64(7), mock.Anything).Return(nil)
				d.carts.EXPECT().DeleteCart(mock.Anything, int64(1)).Return(nil)
				d.publisher.EXPECT().PublishOrderCreated(mock.Anything, mock.Anything).Return(nil)
			},
			wantOrderID: 7,
		},
		{
			name: "repeated confirm returns the existing order",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{ID: 7, PaymentIntentID: "pi_1"}, nil).Once()
			},
			wantOrderID: 7,
		},
		{
			name: "amount mismatch creates no order",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.provider.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
					Return(payment.Intent{ID: "pi_1", Amount: testTotalPence - 1, Status: payment.StatusSucceeded}, nil)
				expectFreshCart(d.cartMgr, d.carts)
			},
			wantErr: entities.ErrAmountMismatch,
		},
		{
			name: "unsuccessful payment creates no order",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.provider.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
					Return(payment.Intent{ID: "pi_1", Amount: testTotalPence, Status: payment.StatusRequiresPaymentMethod}, nil)
				expectFreshCart(d.cartMgr, d.carts)
			},
			wantErr: entities.ErrPaymentNotSucceeded,
		},
		{
			name: "lost race falls back to the winner's order",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.provider.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil)
				expectFreshCart(d.cartMgr, d.carts)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrOrderAlreadyExists)
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{ID: 7, PaymentIntentID: "pi_1"}, nil).Once()
			},
			wantOrderID: 7,
		},
		{
			name: "cart deleted by the winner falls back to its order",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.provider.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil)
				d.cartMgr.EXPECT().GetCurrentCart(mock.Anything, identity).Return(testCart(), false, nil)
				d.carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(entities.ErrCartNotFound)
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{ID: 7, PaymentIntentID: "pi_1"}, nil).Once()
			},
			wantOrderID: 7,
		},
		{
			name: "transaction failure leaves the cart intact",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.provider.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil)
				expectFreshCart(d.cartMgr, d.carts)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, dbError)
			},
			wantErr: dbError,
		},
		{
			name: "cart emptied since intent creation",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByPaymentIntentID(mock.Anything, "pi_1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.provider.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil)
				d.cartMgr.EXPECT().GetCurrentCart(mock.Anything, identity).
					Return(entities.Cart{ID: 1}, false, nil)
				d.carts.EXPECT().LockCart(mock.Anything, int64(1)).Return(nil)
				d.carts.EXPECT().ListItems(mock.Anything, int64(1)).Return(nil, nil)
			},
			wantErr: entities.ErrEmptyCart,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := deps{
				cartMgr:   mocks.NewMockCartManager(t),
				carts:     mocks.NewMockCartRepo(t),
				orders:    mocks.NewMockOrderRepo(t),
				provider:  mocks.NewMockPaymentProvider(t),
				publisher: mocks.NewMockEventPublisher(t),
			}
			tc.mockBehavior(d)

			svc := newCheckoutService(t, d.cartMgr, d.carts, d.orders, d.provider, d.publisher)
			order, err := svc.ConfirmPayment(context.Background(), identity, req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrderID, order.ID)
		})
	}
}

func TestCheckoutService_Summary(t *testing.T) {
	identity := entities.Identity{UserID: 42}

	t.Run("prices the current cart", func(t *testing.T) {
		cartMgr := mocks.NewMockCartManager(t)
		carts := mocks.NewMockCartRepo(t)
		orders := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockPaymentProvider(t)
		publisher := mocks.NewMockEventPublisher(t)

		cartMgr.EXPECT().GetCurrentCart(mock.Anything, identity).Return(testCart(), false, nil)

		svc := newCheckoutService(t, cartMgr, carts, orders, provider, publisher)
		_, summary, err := svc.Summary(context.Background(), identity)

		require.NoError(t, err)
		assert.Equal(t, "40.00", summary.Subtotal.StringFixed(2))
		assert.Equal(t, "4.99", summary.ShippingCost.StringFixed(2))
		assert.Equal(t, "8.00", summary.Tax.StringFixed(2))
		assert.Equal(t, "52.99", summary.Total.StringFixed(2))
	})

	t.Run("empty cart", func(t *testing.T) {
		cartMgr := mocks.NewMockCartManager(t)
		carts := mocks.NewMockCartRepo(t)
		orders := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockPaymentProvider(t)
		publisher := mocks.NewMockEventPublisher(t)

		cartMgr.EXPECT().GetCurrentCart(mock.Anything, identity).Return(entities.Cart{ID: 1}, false, nil)

		svc := newCheckoutService(t, cartMgr, carts, orders, provider, publisher)
		_, _, err := svc.Summary(context.Background(), identity)

		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})
}

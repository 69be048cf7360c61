package handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/handler"
	mocks "github.com/verdantgoods/storefront/internal/handler/mocks"
	"github.com/verdantgoods/storefront/internal/middleware"
)

func newOrderRouter(svc handler.OrderService) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Session(7 * 24 * time.Hour))
	handler.NewOrderHandler(newTestLogger(), svc).Init(r)
	return r
}

func TestOrderHandler_ListOrders(t *testing.T) {
	orders := []entities.Order{
		{ID: 7, UserID: ptr(int64(42)), GrandTotal: decimal.RequireFromString("52.99")},
		{ID: 9, UserID: ptr(int64(42)), GrandTotal: decimal.RequireFromString("12.50")},
	}

	testCases := []struct {
		name         string
		userHeader   string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:       "success",
			userHeader: "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything, int64(42)).Return(orders, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"grand_total":"52.99"`,
		},
		{
			name:         "guests are rejected",
			userHeader:   "",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:       "internal error",
			userHeader: "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything, int64(42)).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newOrderRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/account/orders", nil)
			if tc.userHeader != "" {
				req = asUser(req, tc.userHeader)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	order := entities.Order{
		ID:              7,
		UserID:          ptr(int64(42)),
		PaymentIntentID: "pi_1",
		GrandTotal:      decimal.RequireFromString("52.99"),
		Items: []entities.OrderItem{
			{OrderID: 7, ProductID: 10, Quantity: 2, ProductCost: decimal.NewFromInt(20), ProductTotal: decimal.NewFromInt(40)},
		},
	}

	testCases := []struct {
		name         string
		path         string
		userHeader   string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:       "success",
			path:       "/account/orders/7",
			userHeader: "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(42), int64(7)).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"product_total":"40.00"`,
		},
		{
			name:       "not found",
			path:       "/account/orders/99",
			userHeader: "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(42), int64(99)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid order id",
			path:         "/account/orders/abc",
			userHeader:   "42",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "guests are rejected",
			path:         "/account/orders/7",
			userHeader:   "",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newOrderRouter(svc)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.userHeader != "" {
				req = asUser(req, tc.userHeader)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

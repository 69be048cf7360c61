package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/middleware"
	"github.com/verdantgoods/storefront/pkg/utils"
)

type OrderService interface {
	ListOrders(ctx context.Context, userID int64) ([]entities.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (entities.Order, error)
}

type OrderHandler struct {
	logger *slog.Logger
	svc    OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger: logger.With(slog.String("handler", "orders")),
		svc:    svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Get("/account/orders", h.ListOrders)
	r.Get("/account/orders/{order_id}", h.GetOrder)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	if !identity.Authenticated() {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	orders, err := h.svc.ListOrders(ctx, identity.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.Int64("userID", identity.UserID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderToJSON(order))
	}

	utils.WriteJSON(w, out, http.StatusOK)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	if !identity.Authenticated() {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	orderID, err := parseID(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrder(ctx, identity.UserID, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int64("orderID", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderToJSON(order), http.StatusOK)
}

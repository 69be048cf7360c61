package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/middleware"
	"github.com/verdantgoods/storefront/pkg/utils"
)

type CartService interface {
	GetCurrentCart(ctx context.Context, identity entities.Identity) (entities.Cart, bool, error)
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (entities.CartItem, error)
	UpdateItem(ctx context.Context, cartID, productID int64, quantity int) (entities.CartItem, bool, error)
	RemoveItem(ctx context.Context, cartID, productID int64) error
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Get("/cart", h.GetCart)
	r.Post("/cart/items", h.AddItem)
	r.Put("/cart/items/{product_id}", h.UpdateItem)
	r.Delete("/cart/items/{product_id}", h.RemoveItem)
}

// GetCart returns the caller's current cart, creating it on first access.
// When a guest cart was just merged into the user's cart the session
// cookie is expired so the merge cannot run twice.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	cart, merged, err := h.svc.GetCurrentCart(ctx, identity)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if merged {
		middleware.ExpireSessionCookie(w)
	}

	utils.WriteJSON(w, CartToJSON(cart), http.StatusOK)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	var body AddItemRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	cart, merged, err := h.svc.GetCurrentCart(ctx, identity)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if merged {
		middleware.ExpireSessionCookie(w)
	}

	item, err := h.svc.AddItem(ctx, cart.ID, body.ProductID, body.Quantity)

	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrInvalidQuantity) {
		utils.WriteError(w, "invalid quantity", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add item", slog.Any("error", err), slog.Int64("productID", body.ProductID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CartItemToJSON(item), http.StatusCreated)
}

// UpdateItem sets a line's quantity. A quantity of zero removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	productID, err := parseID(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var body UpdateItemRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, merged, err := h.svc.GetCurrentCart(ctx, identity)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if merged {
		middleware.ExpireSessionCookie(w)
	}

	item, removed, err := h.svc.UpdateItem(ctx, cart.ID, productID, *body.Quantity)

	if errors.Is(err, entities.ErrInvalidQuantity) {
		utils.WriteError(w, "invalid quantity", http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrCartItemNotFound) {
		utils.WriteError(w, "cart item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update item", slog.Any("error", err), slog.Int64("productID", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if removed {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, CartItemToJSON(item), http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	productID, err := parseID(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	cart, merged, err := h.svc.GetCurrentCart(ctx, identity)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if merged {
		middleware.ExpireSessionCookie(w)
	}

	if err := h.svc.RemoveItem(ctx, cart.ID, productID); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove item", slog.Any("error", err), slog.Int64("productID", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

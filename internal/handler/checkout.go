package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/middleware"
	"github.com/verdantgoods/storefront/internal/payment"
	"github.com/verdantgoods/storefront/internal/pricing"
	"github.com/verdantgoods/storefront/internal/service"
	"github.com/verdantgoods/storefront/pkg/utils"
)

type CheckoutService interface {
	Summary(ctx context.Context, identity entities.Identity) (entities.Cart, pricing.Summary, error)
	CreatePaymentIntent(ctx context.Context, identity entities.Identity) (payment.Intent, error)
	ConfirmPayment(ctx context.Context, identity entities.Identity, req service.ConfirmPaymentRequest) (entities.Order, error)
}

type CheckoutHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewCheckoutHandler(logger *slog.Logger, svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger.With(slog.String("handler", "checkout")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Get("/checkout", h.Summary)
	r.Post("/checkout/payment-intent", h.CreatePaymentIntent)
	r.Post("/checkout/confirm", h.ConfirmPayment)
}

// Summary returns the cart lines and server-computed totals for the
// checkout page. The client renders these figures but never sends them
// back; the trusted total is recomputed at confirmation.
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	cart, summary, err := h.svc.Summary(ctx, identity)
	if errors.Is(err, entities.ErrEmptyCart) {
		utils.WriteError(w, "cart is empty", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build checkout summary", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := CheckoutSummary{
		Items:   make([]CartItem, 0, len(cart.Items)),
		Summary: SummaryToJSON(summary),
	}
	for _, item := range cart.Items {
		out.Items = append(out.Items, CartItemToJSON(item))
	}

	utils.WriteJSON(w, out, http.StatusOK)
}

func (h *CheckoutHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	intent, err := h.svc.CreatePaymentIntent(ctx, identity)

	if errors.Is(err, entities.ErrEmptyCart) {
		utils.WriteError(w, "cart is empty", http.StatusConflict)
		return
	}
	if errors.Is(err, entities.ErrStaleCart) {
		utils.WriteError(w, "cart contains unavailable products", http.StatusConflict)
		return
	}
	if errors.Is(err, payment.ErrProvider) {
		h.logger.ErrorContext(ctx, "payment provider error", slog.Any("error", err))
		utils.WriteError(w, "payment provider unavailable", http.StatusBadGateway)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create payment intent", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, PaymentIntent{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}, http.StatusCreated)
}

// ConfirmPayment finalises an order after the client has completed the
// provider payment flow.
func (h *CheckoutHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.IdentityFromContext(ctx)

	var body ConfirmPaymentRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.ConfirmPayment(ctx, identity, service.ConfirmPaymentRequest{
		PaymentIntentID: body.PaymentIntentID,
		PaymentType:     body.PaymentType,
		FirstName:       body.FirstName,
		LastName:        body.LastName,
		Email:           body.Email,
		Telephone:       body.Telephone,
		Billing:         body.Billing.toEntity(),
		Shipping:        body.Shipping.toEntity(),
	})

	if errors.Is(err, entities.ErrEmptyCart) {
		utils.WriteError(w, "cart is empty", http.StatusConflict)
		return
	}
	if errors.Is(err, entities.ErrStaleCart) {
		utils.WriteError(w, "cart contains unavailable products", http.StatusConflict)
		return
	}
	if errors.Is(err, entities.ErrAmountMismatch) {
		utils.WriteError(w, "payment amount does not match order total", http.StatusConflict)
		return
	}
	if errors.Is(err, entities.ErrPaymentNotSucceeded) {
		utils.WriteError(w, "payment has not succeeded", http.StatusPaymentRequired)
		return
	}
	if errors.Is(err, payment.ErrProvider) {
		h.logger.ErrorContext(ctx, "payment provider error",
			slog.Any("error", err), slog.String("paymentIntentID", body.PaymentIntentID))
		utils.WriteError(w, "payment provider unavailable", http.StatusBadGateway)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to confirm payment",
			slog.Any("error", err), slog.String("paymentIntentID", body.PaymentIntentID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderToJSON(order), http.StatusCreated)
}

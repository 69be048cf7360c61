package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/payment"
	"github.com/verdantgoods/storefront/internal/pricing"
	"github.com/verdantgoods/storefront/pkg/trm"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	CreateOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	GetOrderByPaymentIntentID(ctx context.Context, intentID string) (entities.Order, error)
	ListOrdersByUserID(ctx context.Context, userID int64) ([]entities.Order, error)
}

type PaymentProvider interface {
	CreateIntent(ctx context.Context, params payment.CreateIntentParams) (payment.Intent, error)
	RetrieveIntent(ctx context.Context, id string) (payment.Intent, error)
}

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order entities.Order) error
}

type CartManager interface {
	GetCurrentCart(ctx context.Context, identity entities.Identity) (entities.Cart, bool, error)
}

// ConfirmPaymentRequest carries the customer fields submitted at the end
// of checkout. The client never sends an amount; the trusted total is
// recomputed server-side.
type ConfirmPaymentRequest struct {
	PaymentIntentID string
	PaymentType     string

	FirstName string
	LastName  string
	Email     string
	Telephone string

	Billing  entities.Address
	Shipping entities.Address
}

type checkoutService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	cartMgr    CartManager
	carts      CartRepo
	orders     OrderRepo
	provider   PaymentProvider
	publisher  EventPublisher
	pricingCfg pricing.Config
	currency   string
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	cartMgr CartManager,
	carts CartRepo,
	orders OrderRepo,
	provider PaymentProvider,
	publisher EventPublisher,
	pricingCfg pricing.Config,
	currency string,
) *checkoutService {
	return &checkoutService{
		logger:     logger.With(slog.String("service", "checkout")),
		txManager:  txManager,
		cartMgr:    cartMgr,
		carts:      carts,
		orders:     orders,
		provider:   provider,
		publisher:  publisher,
		pricingCfg: pricingCfg,
		currency:   currency,
	}
}

// Summary prices the current cart for the checkout page. Computed fresh
// on every call, cart contents or catalog prices may have changed.
func (s *checkoutService) Summary(ctx context.Context, identity entities.Identity) (entities.Cart, pricing.Summary, error) {
	cart, _, err := s.cartMgr.GetCurrentCart(ctx, identity)
	if err != nil {
		return entities.Cart{}, pricing.Summary{}, err
	}
	if cart.IsEmpty() {
		return entities.Cart{}, pricing.Summary{}, entities.ErrEmptyCart
	}

	return cart, pricing.Calculate(pricing.FromCart(cart), s.pricingCfg), nil
}

// CreatePaymentIntent asks the provider to authorize a charge for
// exactly the trusted total. No local state changes.
func (s *checkoutService) CreatePaymentIntent(ctx context.Context, identity entities.Identity) (payment.Intent, error) {
	cart, _, err := s.cartMgr.GetCurrentCart(ctx, identity)
	if err != nil {
		return payment.Intent{}, err
	}
	if cart.IsEmpty() {
		return payment.Intent{}, entities.ErrEmptyCart
	}
	if cart.HasStaleItems() {
		return payment.Intent{}, entities.ErrStaleCart
	}

	summary := pricing.Calculate(pricing.FromCart(cart), s.pricingCfg)

	intent, err := s.provider.CreateIntent(ctx, payment.CreateIntentParams{
		Amount:   summary.TotalMinorUnits(),
		Currency: s.currency,
		CartID:   cart.ID,
		UserID:   identity.UserID,
	})
	if err != nil {
		checkoutFailures.WithLabelValues("provider_error").Inc()
		return payment.Intent{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.InfoContext(ctx, "payment intent created",
		slog.String("intent_id", intent.ID),
		slog.Int64("cart_id", cart.ID),
		slog.Int64("amount", intent.Amount),
	)
	return intent, nil
}

// ConfirmPayment verifies the provider's authoritative charge against a
// freshly recomputed trusted total and, inside one transaction, creates
// the order snapshot and clears the cart. Any failure rolls the whole
// thing back and leaves the cart intact for retry.
func (s *checkoutService) ConfirmPayment(ctx context.Context, identity entities.Identity, req ConfirmPaymentRequest) (entities.Order, error) {
	// Retried confirm for an already-fulfilled intent short-circuits;
	// exactly one order per payment reference.
	if existing, err := s.orders.GetOrderByPaymentIntentID(ctx, req.PaymentIntentID); err == nil {
		return existing, nil
	} else if !errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, err
	}

	intent, err := s.provider.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		checkoutFailures.WithLabelValues("provider_error").Inc()
		return entities.Order{}, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	cart, _, err := s.cartMgr.GetCurrentCart(ctx, identity)
	if err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.carts.LockCart(ctx, cart.ID); err != nil {
			return err
		}

		// Recompute under the cart lock so the verified amount is the
		// amount of exactly the lines being turned into an order.
		items, err := s.carts.ListItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		cart.Items = items
		if cart.IsEmpty() {
			return entities.ErrEmptyCart
		}
		if cart.HasStaleItems() {
			return entities.ErrStaleCart
		}

		summary := pricing.Calculate(pricing.FromCart(cart), s.pricingCfg)

		if intent.Amount != summary.TotalMinorUnits() {
			s.logger.WarnContext(ctx, "payment amount mismatch, possible tampering",
				slog.String("intent_id", intent.ID),
				slog.Int64("cart_id", cart.ID),
				slog.Int64("charged", intent.Amount),
				slog.Int64("expected", summary.TotalMinorUnits()),
			)
			return entities.ErrAmountMismatch
		}
		if !intent.Succeeded() {
			return entities.ErrPaymentNotSucceeded
		}

		order, err = s.orders.CreateOrder(ctx, buildOrder(identity, req, summary))
		if err != nil {
			return err
		}

		orderItems := make([]entities.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			orderItems = append(orderItems, entities.OrderItem{
				OrderID:      order.ID,
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
				ProductCost:  item.UnitCost(),
				ProductTotal: item.LineTotal(),
			})
		}
		if err := s.orders.CreateOrderItems(ctx, order.ID, orderItems); err != nil {
			return err
		}
		order.Items = orderItems

		return s.carts.DeleteCart(ctx, cart.ID)
	})

	// Lost the race against a concurrent confirm of the same intent,
	// either on the unique index or because the winner already deleted
	// the cart. The other transaction's order is the result.
	if errors.Is(err, entities.ErrOrderAlreadyExists) || errors.Is(err, entities.ErrCartNotFound) {
		return s.orders.GetOrderByPaymentIntentID(ctx, req.PaymentIntentID)
	}
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrAmountMismatch):
			checkoutFailures.WithLabelValues("amount_mismatch").Inc()
		case errors.Is(err, entities.ErrPaymentNotSucceeded):
			checkoutFailures.WithLabelValues("payment_failed").Inc()
		case errors.Is(err, entities.ErrEmptyCart), errors.Is(err, entities.ErrStaleCart):
		default:
			checkoutFailures.WithLabelValues("transaction_error").Inc()
		}
		return entities.Order{}, err
	}

	ordersCreated.Inc()
	s.logger.InfoContext(ctx, "order created",
		slog.Int64("order_id", order.ID),
		slog.String("intent_id", intent.ID),
		slog.String("grand_total", order.GrandTotal.StringFixed(2)),
	)

	// Best effort; the order exists regardless of whether the event
	// makes it out.
	if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order created event",
			slog.Int64("order_id", order.ID), slog.Any("error", err))
	}

	return order, nil
}

func buildOrder(identity entities.Identity, req ConfirmPaymentRequest, summary pricing.Summary) entities.Order {
	order := entities.Order{
		PaymentIntentID: req.PaymentIntentID,
		PaymentType:     req.PaymentType,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Telephone:       req.Telephone,
		CostTotal:       summary.Subtotal,
		ShippingTotal:   summary.ShippingCost,
		TaxTotal:        summary.Tax,
		GrandTotal:      summary.Total,
		Billing:         req.Billing,
		Shipping:        req.Shipping,
		Status:          entities.OrderStatusSuccessful,
	}
	if identity.Authenticated() {
		userID := identity.UserID
		order.UserID = &userID
	}
	return order
}

package handler

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/pricing"
)

// Requests

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"omitempty,gte=1"`
}

// Quantity is a pointer to tell an explicit zero (delete the line) apart
// from a missing field.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type AddressRequest struct {
	Line1    string `json:"line_1" validate:"required"`
	Line2    string `json:"line_2"`
	City     string `json:"city" validate:"required"`
	County   string `json:"county"`
	Postcode string `json:"postcode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
	PaymentType     string `json:"payment_type" validate:"required"`

	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Telephone string `json:"telephone"`

	Billing  AddressRequest `json:"billing" validate:"required"`
	Shipping AddressRequest `json:"shipping" validate:"required"`
}

func (r AddressRequest) toEntity() entities.Address {
	return entities.Address{
		Line1:    r.Line1,
		Line2:    r.Line2,
		City:     r.City,
		County:   r.County,
		Postcode: r.Postcode,
		Country:  r.Country,
	}
}

// Responses

// CartItem is a cart line as rendered to the client
// swagger:model CartItem
type CartItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Cost      string `json:"cost"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
	StockQty  int    `json:"stock_qty"`

	// Stale marks a line whose product has been removed from the
	// catalog; it prices at zero and should be removed before checkout.
	Stale bool `json:"stale"`
}

// Cart is the current cart payload
// swagger:model Cart
type Cart struct {
	ID       int64      `json:"id"`
	Items    []CartItem `json:"items"`
	Subtotal string     `json:"subtotal"`
}

// PricingSummary is the checkout totals payload
// swagger:model PricingSummary
type PricingSummary struct {
	Subtotal     string `json:"subtotal"`
	ShippingCost string `json:"shipping_cost"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
}

// CheckoutSummary is the checkout page payload
// swagger:model CheckoutSummary
type CheckoutSummary struct {
	Items   []CartItem     `json:"items"`
	Summary PricingSummary `json:"summary"`
}

// PaymentIntent is the client handle for a provider payment intent
// swagger:model PaymentIntent
type PaymentIntent struct {
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// OrderItem is a frozen order line
// swagger:model OrderItem
type OrderItem struct {
	ProductID    int64  `json:"product_id"`
	Quantity     int    `json:"quantity"`
	ProductCost  string `json:"product_cost"`
	ProductTotal string `json:"product_total"`
}

// Order is an order as rendered to the client
// swagger:model Order
type Order struct {
	ID              int64       `json:"id"`
	PaymentIntentID string      `json:"payment_intent_id"`
	Status          string      `json:"status"`
	CostTotal       string      `json:"cost_total"`
	ShippingTotal   string      `json:"shipping_total"`
	TaxTotal        string      `json:"tax_total"`
	GrandTotal      string      `json:"grand_total"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items,omitempty"`
}

func CartToJSON(cart entities.Cart) Cart {
	out := Cart{
		ID:    cart.ID,
		Items: make([]CartItem, 0, len(cart.Items)),
	}
	subtotal := decimal.Zero
	for _, item := range cart.Items {
		out.Items = append(out.Items, CartItemToJSON(item))
		subtotal = subtotal.Add(item.LineTotal())
	}
	out.Subtotal = subtotal.StringFixed(2)
	return out
}

func CartItemToJSON(item entities.CartItem) CartItem {
	j := CartItem{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Cost:      item.UnitCost().StringFixed(2),
		Subtotal:  item.LineTotal().StringFixed(2),
		Stale:     item.Stale(),
	}
	if item.Product != nil {
		j.Name = item.Product.Name
		j.StockQty = item.Product.StockQty
	}
	return j
}

func SummaryToJSON(summary pricing.Summary) PricingSummary {
	return PricingSummary{
		Subtotal:     summary.Subtotal.StringFixed(2),
		ShippingCost: summary.ShippingCost.StringFixed(2),
		Tax:          summary.Tax.StringFixed(2),
		Total:        summary.Total.StringFixed(2),
	}
}

func OrderToJSON(order entities.Order) Order {
	out := Order{
		ID:              order.ID,
		PaymentIntentID: order.PaymentIntentID,
		Status:          string(order.Status),
		CostTotal:       order.CostTotal.StringFixed(2),
		ShippingTotal:   order.ShippingTotal.StringFixed(2),
		TaxTotal:        order.TaxTotal.StringFixed(2),
		GrandTotal:      order.GrandTotal.StringFixed(2),
		CreatedAt:       order.CreatedAt,
	}
	for _, item := range order.Items {
		out.Items = append(out.Items, OrderItem{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			ProductCost:  item.ProductCost.StringFixed(2),
			ProductTotal: item.ProductTotal.StringFixed(2),
		})
	}
	return out
}

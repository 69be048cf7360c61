package repo

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/verdantgoods/storefront/internal/entities"
)

type Cart struct {
	ID        int64          `db:"id"`
	UserID    sql.NullInt64  `db:"user_id"`
	SessionID sql.NullString `db:"session_id"`
	ExpiresAt sql.NullTime   `db:"expires_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// CartItem carries the joined product columns; they are null when the
// product has been deleted from the catalog.
type CartItem struct {
	ID        int64 `db:"id"`
	CartID    int64 `db:"cart_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`

	ProductName   sql.NullString      `db:"product_name"`
	ProductMPN    sql.NullString      `db:"product_mpn"`
	ProductStatus sql.NullString      `db:"product_status"`
	ProductCost   decimal.NullDecimal `db:"product_cost"`
	ProductStock  sql.NullInt32       `db:"product_stock"`
}

type Product struct {
	ID       int64           `db:"id"`
	MPN      sql.NullString  `db:"mpn"`
	Name     string          `db:"name"`
	Status   string          `db:"status"`
	Cost     decimal.Decimal `db:"cost"`
	StockQty int             `db:"stock_qty"`
}

type Order struct {
	ID              int64         `db:"id"`
	UserID          sql.NullInt64 `db:"user_id"`
	PaymentIntentID string        `db:"payment_intent_id"`
	PaymentType     string        `db:"payment_type"`

	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Email     string         `db:"email"`
	Telephone sql.NullString `db:"telephone"`

	CostTotal     decimal.Decimal `db:"cost_total"`
	ShippingTotal decimal.Decimal `db:"shipping_total"`
	TaxTotal      decimal.Decimal `db:"tax_total"`
	GrandTotal    decimal.Decimal `db:"grand_total"`

	BillingLine1    string         `db:"billing_line_1"`
	BillingLine2    sql.NullString `db:"billing_line_2"`
	BillingCity     string         `db:"billing_city"`
	BillingCounty   sql.NullString `db:"billing_county"`
	BillingPostcode string         `db:"billing_postcode"`
	BillingCountry  string         `db:"billing_country"`

	ShippingLine1    string         `db:"shipping_line_1"`
	ShippingLine2    sql.NullString `db:"shipping_line_2"`
	ShippingCity     string         `db:"shipping_city"`
	ShippingCounty   sql.NullString `db:"shipping_county"`
	ShippingPostcode string         `db:"shipping_postcode"`
	ShippingCountry  string         `db:"shipping_country"`

	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type OrderItem struct {
	ID           int64           `db:"id"`
	OrderID      int64           `db:"order_id"`
	ProductID    int64           `db:"product_id"`
	Quantity     int             `db:"quantity"`
	ProductCost  decimal.Decimal `db:"product_cost"`
	ProductTotal decimal.Decimal `db:"product_total"`
}

func CartToEntity(c Cart) entities.Cart {
	cart := entities.Cart{
		ID:        c.ID,
		UpdatedAt: c.UpdatedAt,
	}
	if c.UserID.Valid {
		cart.UserID = &c.UserID.Int64
	}
	if c.SessionID.Valid {
		cart.SessionID = &c.SessionID.String
	}
	if c.ExpiresAt.Valid {
		cart.ExpiresAt = &c.ExpiresAt.Time
	}
	return cart
}

func CartItemToEntity(i CartItem) entities.CartItem {
	item := entities.CartItem{
		ID:        i.ID,
		CartID:    i.CartID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
	}
	if i.ProductName.Valid {
		item.Product = &entities.Product{
			ID:       i.ProductID,
			MPN:      nullStringToString(i.ProductMPN),
			Name:     i.ProductName.String,
			Status:   nullStringToString(i.ProductStatus),
			Cost:     i.ProductCost.Decimal,
			StockQty: int(i.ProductStock.Int32),
		}
	}
	return item
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:       p.ID,
		MPN:      nullStringToString(p.MPN),
		Name:     p.Name,
		Status:   p.Status,
		Cost:     p.Cost,
		StockQty: p.StockQty,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		PaymentIntentID: o.PaymentIntentID,
		PaymentType:     o.PaymentType,
		FirstName:       o.FirstName,
		LastName:        o.LastName,
		Email:           o.Email,
		Telephone:       nullStringToString(o.Telephone),
		CostTotal:       o.CostTotal,
		ShippingTotal:   o.ShippingTotal,
		TaxTotal:        o.TaxTotal,
		GrandTotal:      o.GrandTotal,
		Billing: entities.Address{
			Line1:    o.BillingLine1,
			Line2:    nullStringToString(o.BillingLine2),
			City:     o.BillingCity,
			County:   nullStringToString(o.BillingCounty),
			Postcode: o.BillingPostcode,
			Country:  o.BillingCountry,
		},
		Shipping: entities.Address{
			Line1:    o.ShippingLine1,
			Line2:    nullStringToString(o.ShippingLine2),
			City:     o.ShippingCity,
			County:   nullStringToString(o.ShippingCounty),
			Postcode: o.ShippingPostcode,
			Country:  o.ShippingCountry,
		},
		Status:    entities.OrderStatus(o.Status),
		CreatedAt: o.CreatedAt,
	}
	if o.UserID.Valid {
		order.UserID = &o.UserID.Int64
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:           i.ID,
		OrderID:      i.OrderID,
		ProductID:    i.ProductID,
		Quantity:     i.Quantity,
		ProductCost:  i.ProductCost,
		ProductTotal: i.ProductTotal,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

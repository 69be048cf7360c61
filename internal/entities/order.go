package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusSuccessful OrderStatus = "successful"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type Address struct {
	Line1    string
	Line2    string
	City     string
	County   string
	Postcode string
	Country  string
}

// Order is an immutable snapshot taken at the moment a payment was
// confirmed. Totals and item costs are frozen copies, later catalog
// price changes never alter a placed order.
type Order struct {
	ID              int64
	UserID          *int64
	PaymentIntentID string
	PaymentType     string

	FirstName string
	LastName  string
	Email     string
	Telephone string

	CostTotal     decimal.Decimal
	ShippingTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	GrandTotal    decimal.Decimal

	Billing  Address
	Shipping Address

	Status    OrderStatus
	CreatedAt time.Time

	Items []OrderItem
}

type OrderItem struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	Quantity     int
	ProductCost  decimal.Decimal
	ProductTotal decimal.Decimal
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderAlreadyExists  = errors.New("order already exists for this payment intent")
	ErrAmountMismatch      = errors.New("charged amount does not match the cart total")
	ErrPaymentNotSucceeded = errors.New("payment has not succeeded")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}

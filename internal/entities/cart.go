package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        int64
	UserID    *int64
	SessionID *string
	ExpiresAt *time.Time
	UpdatedAt time.Time

	Items []CartItem
}

func (c Cart) IsGuest() bool {
	return c.UserID == nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// HasStaleItems reports whether any line references a product that no
// longer exists in the catalog.
func (c Cart) HasStaleItems() bool {
	for _, item := range c.Items {
		if item.Stale() {
			return true
		}
	}
	return false
}

type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int

	// Product is nil when the referenced product has been removed from
	// the catalog since the line was added.
	Product *Product
}

func (i CartItem) Stale() bool {
	return i.Product == nil
}

// UnitCost is the current catalog cost of the line's product, zero for
// stale lines.
func (i CartItem) UnitCost() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Cost
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitCost().Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrStaleCart        = errors.New("cart contains items that are no longer for sale")
)

// Package pricing computes checkout totals. It is the single source of
// truth for money in the service: the same calculation runs when a
// payment intent is created and again when the payment is confirmed, so
// the amount requested from the provider and the amount verified against
// it can never drift apart.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/verdantgoods/storefront/internal/entities"
)

type Config struct {
	// Orders with a subtotal at or above the threshold ship free,
	// everything below pays the flat rate.
	FreeShippingThreshold decimal.Decimal
	FlatShippingRate      decimal.Decimal
	TaxRate               decimal.Decimal
}

type Line struct {
	ProductID int64
	UnitCost  decimal.Decimal
	Quantity  int

	// Stale lines reference deleted products and price at zero.
	Stale bool
}

type Summary struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal

	// StaleProductIDs lists lines that priced at zero because their
	// product is gone from the catalog.
	StaleProductIDs []int64
}

// Calculate prices the given lines. All monetary values are rounded to
// two decimal places with half-up rounding, matching the minor-unit
// amount sent to the payment provider.
func Calculate(lines []Line, cfg Config) Summary {
	var summary Summary

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Stale {
			summary.StaleProductIDs = append(summary.StaleProductIDs, line.ProductID)
			continue
		}
		subtotal = subtotal.Add(line.UnitCost.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	summary.Subtotal = subtotal.Round(2)

	summary.ShippingCost = cfg.FlatShippingRate.Round(2)
	if summary.Subtotal.GreaterThanOrEqual(cfg.FreeShippingThreshold) {
		summary.ShippingCost = decimal.Zero.Round(2)
	}

	summary.Tax = summary.Subtotal.Mul(cfg.TaxRate).Round(2)
	summary.Total = summary.Subtotal.Add(summary.ShippingCost).Add(summary.Tax).Round(2)

	return summary
}

// FromCart converts cart lines into pricing lines using each product's
// current catalog cost, not the cost at the time the item was added.
func FromCart(cart entities.Cart) []Line {
	lines := make([]Line, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, Line{
			ProductID: item.ProductID,
			UnitCost:  item.UnitCost(),
			Quantity:  item.Quantity,
			Stale:     item.Stale(),
		})
	}
	return lines
}

var minorUnitFactor = decimal.NewFromInt(100)

// TotalMinorUnits is the grand total in the payment provider's integer
// representation (pence). Exact because Total is already rounded to two
// decimal places.
func (s Summary) TotalMinorUnits() int64 {
	return s.Total.Mul(minorUnitFactor).IntPart()
}

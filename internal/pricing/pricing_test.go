package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/verdantgoods/storefront/internal/entities"
	"github.com/verdantgoods/storefront/internal/pricing"
)

func testConfig() pricing.Config {
	return pricing.Config{
		FreeShippingThreshold: decimal.RequireFromString("50"),
		FlatShippingRate:      decimal.RequireFromString("4.99"),
		TaxRate:               decimal.RequireFromString("0.20"),
	}
}

func line(cost string, qty int) pricing.Line {
	return pricing.Line{UnitCost: decimal.RequireFromString(cost), Quantity: qty}
}

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name         string
		lines        []pricing.Line
		wantSubtotal string
		wantShipping string
		wantTax      string
		wantTotal    string
		wantMinor    int64
	}{
		{
			name:         "two units below free shipping threshold",
			lines:        []pricing.Line{line("20.00", 2)},
			wantSubtotal: "40.00",
			wantShipping: "4.99",
			wantTax:      "8.00",
			wantTotal:    "52.99",
			wantMinor:    5299,
		},
		{
			name:         "subtotal exactly at threshold ships free",
			lines:        []pricing.Line{line("25.00", 2)},
			wantSubtotal: "50.00",
			wantShipping: "0.00",
			wantTax:      "10.00",
			wantTotal:    "60.00",
			wantMinor:    6000,
		},
		{
			name:         "one penny below threshold pays flat rate",
			lines:        []pricing.Line{line("49.99", 1)},
			wantSubtotal: "49.99",
			wantShipping: "4.99",
			wantTax:      "10.00",
			wantTotal:    "64.98",
			wantMinor:    6498,
		},
		{
			name:         "tax rounds half up",
			lines:        []pricing.Line{line("10.99", 3)},
			wantSubtotal: "32.97",
			wantShipping: "4.99",
			// 32.97 * 0.20 = 6.594 -> 6.59
			wantTax:   "6.59",
			wantTotal: "44.55",
			wantMinor: 4455,
		},
		{
			name:         "multiple lines accumulate",
			lines:        []pricing.Line{line("20.00", 2), line("15.50", 1)},
			wantSubtotal: "55.50",
			wantShipping: "0.00",
			wantTax:      "11.10",
			wantTotal:    "66.60",
			wantMinor:    6660,
		},
		{
			name:         "no lines",
			lines:        nil,
			wantSubtotal: "0.00",
			wantShipping: "4.99",
			wantTax:      "0.00",
			wantTotal:    "4.99",
			wantMinor:    499,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.Calculate(tc.lines, testConfig())

			assert.Equal(t, tc.wantSubtotal, got.Subtotal.StringFixed(2))
			assert.Equal(t, tc.wantShipping, got.ShippingCost.StringFixed(2))
			assert.Equal(t, tc.wantTax, got.Tax.StringFixed(2))
			assert.Equal(t, tc.wantTotal, got.Total.StringFixed(2))
			assert.Equal(t, tc.wantMinor, got.TotalMinorUnits())
		})
	}
}

func TestCalculate_StaleLines(t *testing.T) {
	lines := []pricing.Line{
		line("20.00", 2),
		{ProductID: 42, Quantity: 3, Stale: true},
	}

	got := pricing.Calculate(lines, testConfig())

	// The stale line prices at zero but is flagged for the caller.
	assert.Equal(t, "40.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, []int64{42}, got.StaleProductIDs)
}

func TestFromCart(t *testing.T) {
	cost := decimal.RequireFromString("12.50")
	cart := entities.Cart{
		Items: []entities.CartItem{
			{ProductID: 1, Quantity: 2, Product: &entities.Product{ID: 1, Cost: cost}},
			{ProductID: 2, Quantity: 1}, // deleted product
		},
	}

	lines := pricing.FromCart(cart)

	assert.Len(t, lines, 2)
	assert.True(t, lines[0].UnitCost.Equal(cost))
	assert.False(t, lines[0].Stale)
	assert.True(t, lines[1].Stale)
	assert.True(t, lines[1].UnitCost.IsZero())
}

package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID       int64
	MPN      string
	Name     string
	Status   string
	Cost     decimal.Decimal
	StockQty int
}

var ErrProductNotFound = errors.New("product not found")

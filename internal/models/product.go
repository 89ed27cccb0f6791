package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a sellable item of the catalog.
type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name" validate:"required,notblank,max=255"`
	Price        decimal.Decimal `json:"price" validate:"dgt=0,money"`
	PurchaseCost decimal.Decimal `json:"purchase_cost" validate:"dgte=0,money"`
}

// Margin is the sale price minus the purchase cost.
func (p Product) Margin() decimal.Decimal {
	return p.Price.Sub(p.PurchaseCost)
}

func (p Product) String() string {
	return fmt.Sprintf("Product{id=%d, name='%s', price=%s}", p.ID, p.Name, p.Price.String())
}

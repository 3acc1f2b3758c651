package catalog

import (
	"github.com/elegante-shop/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog record. Instances are supplied to the store
// at construction time and never mutated afterwards.
type Product struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Price         decimal.Decimal       `json:"price"`
	OriginalPrice *decimal.Decimal      `json:"original_price,omitempty"`
	Image         string                `json:"image"`
	Colors        []string              `json:"colors"`
	Category      enums.ProductCategory `json:"category"`
	Description   string                `json:"description"`
	Rating        *float64              `json:"rating,omitempty"`
	Reviews       *int                  `json:"reviews,omitempty"`
}

// Discounted reports whether the product carries a crossed-out original price.
func (p Product) Discounted() bool {
	return p.OriginalPrice != nil
}

// HasColor reports whether the product is offered in the given color.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

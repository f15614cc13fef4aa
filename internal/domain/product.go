package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item. Monetary amounts and the aggregate
// rating use decimal values and travel as quoted strings on the wire, so
// clients never see float artifacts.
type Product struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Image         string           `json:"image"`
	CategoryID    int64            `json:"categoryId"`
	Featured      bool             `json:"featured"`
	IsNew         bool             `json:"isNew"`
	IsSale        bool             `json:"isSale"`
	Rating        decimal.Decimal  `json:"rating"`
	ReviewCount   int              `json:"reviewCount"`
	Stock         int              `json:"stock"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// InStock reports whether the product can currently be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DiscountPercent returns the sale discount as a whole percentage, or zero
// when the product has no original price to discount from.
func (p *Product) DiscountPercent() int64 {
	if p.OriginalPrice == nil || p.OriginalPrice.IsZero() {
		return 0
	}
	diff := p.OriginalPrice.Sub(p.Price)
	if diff.Sign() <= 0 {
		return 0
	}
	return diff.Mul(decimal.NewFromInt(100)).Div(*p.OriginalPrice).IntPart()
}

// Package pricing derives selling prices and promotion counts from catalog
// cost prices. All price math stays in decimal; rounding happens only when an
// invoice is rendered.
package pricing

import "github.com/shopspring/decimal"

// markup is the fixed 200% markup over cost.
var markup = decimal.NewFromInt(3)

// SellingPrice returns the retail price for a given cost price.
func SellingPrice(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(markup)
}

// FreeItems returns the promotional free-unit count for a purchase:
// buy 3 get 1 free, so one free unit per three purchased.
func FreeItems(quantity int) int {
	return quantity / 3
}

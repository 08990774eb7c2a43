// Package stock applies quantity deltas to catalog records. Both mutators
// update the record through the pointer the caller resolved from the catalog,
// so the store observes the change without re-fetching.
package stock

import (
	"github.com/shopspring/decimal"

	"wecare/models"
	"wecare/pricing"
)

// ApplySale deducts the purchased units plus the promotional free units from
// the record and returns the free-unit count. The quantity is allowed to go
// negative here; callers that want strict stock must check before applying.
func ApplySale(p *models.Product, quantity int) int {
	free := pricing.FreeItems(quantity)
	p.Quantity -= quantity + free
	return free
}

// ApplyRestock adds the delivered units. A non-nil, non-zero newCost revises
// the cost price before the caller computes the line amount.
func ApplyRestock(p *models.Product, quantity int, newCost *decimal.Decimal) {
	if newCost != nil && !newCost.IsZero() {
		p.CostPrice = *newCost
	}
	p.Quantity += quantity
}

package models

import "github.com/shopspring/decimal"

// Product is one catalog record. ID is assigned when the catalog is loaded
// and stays stable for the whole session; it is not written back to the file.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Origin    string          `json:"origin"`
}

// ProductView is the read model returned by the API: the record plus the
// selling price derived from the cost price.
type ProductView struct {
	Product
	SellPrice decimal.Decimal `json:"sell_price"`
}

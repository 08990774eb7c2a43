package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvoiceTypeSale    = "SALE"
	InvoiceTypeRestock = "RESTOCK"
)

type SaleItem struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

type RestockItem struct {
	ProductID int              `json:"id"`
	Quantity  int              `json:"quantity"`
	NewCost   *decimal.Decimal `json:"new_cost,omitempty"`
}

type SaleRequest struct {
	CustomerName string     `json:"customer_name"`
	Phone        string     `json:"phone"`
	Shipping     string     `json:"shipping"` // "Y"/"y" adds the shipping fee
	Items        []SaleItem `json:"items"`
}

type RestockRequest struct {
	SupplierName string        `json:"supplier_name"`
	Items        []RestockItem `json:"items"`
}

// InvoiceLine is one resolved row of an invoice. UnitPrice is the selling
// price on sales and the (possibly revised) cost price on restocks; Free is
// only set on sales.
type InvoiceLine struct {
	Name      string
	Brand     string
	Quantity  int
	Free      int
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

// Invoice is the transient render model for one transaction. It is never
// stored in the catalog: the stock mutation is the only persistent effect.
type Invoice struct {
	Number       string
	Type         string
	Date         time.Time
	Counterparty string
	Phone        string
	Lines        []InvoiceLine
	ShippingFee  decimal.Decimal
	Total        decimal.Decimal
}

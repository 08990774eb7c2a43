// Package invoice runs the sale and restock transactions: resolve line items
// against the catalog, mutate stock, render the invoice to a file and to the
// display, then persist the catalog.
package invoice

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wecare/config"
	"wecare/models"
	"wecare/pricing"
	"wecare/stock"
	"wecare/store"
)

var (
	ErrInvoiceWrite = errors.New("invoice write failed")
	ErrCatalogSave  = errors.New("catalog save failed")
)

// Result is what a completed transaction hands back to the caller.
type Result struct {
	Number   string          `json:"invoice_number"`
	Filename string          `json:"filename"`
	Total    decimal.Decimal `json:"total"`
}

// Service generates invoices against one catalog store. A single mutex
// serializes whole transactions (resolve through persist), which keeps the
// last-writer-wins property even though fiber handlers run concurrently.
type Service struct {
	store   *store.Store
	cfg     config.Config
	display io.Writer

	now    func() time.Time
	number func(prefix string) string

	mu sync.Mutex
}

func NewService(st *store.Store, cfg config.Config, display io.Writer) *Service {
	if display == nil {
		display = io.Discard
	}
	return &Service{
		store:   st,
		cfg:     cfg,
		display: display,
		now:     time.Now,
		number: func(prefix string) string {
			return fmt.Sprintf("%s-%d", prefix, 1000+rand.Intn(9000))
		},
	}
}

// Sale runs one sale transaction. Every line item is resolved and validated
// before any stock is touched, so a bad product id or a strict-stock
// rejection leaves the catalog exactly as it was. Duplicate product ids are
// deliberate: each line applies its own mutation in input order.
func (s *Service) Sale(req models.SaleRequest) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	txid := uuid.NewString()

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, errors.New("customer name is required")
	}
	// The name ends up in the invoice filename.
	if strings.ContainsAny(req.CustomerName, `/\`) {
		return nil, errors.New("customer name must not contain path separators")
	}
	if len(req.Items) == 0 {
		return nil, errors.New("at least one line item is required")
	}

	records := make([]*models.Product, len(req.Items))
	deduct := make(map[int]int)
	for i, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("line %d: quantity must be positive", i+1)
		}
		p, err := s.store.Get(it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("line %d (product %d): %w", i+1, it.ProductID, err)
		}
		records[i] = p
		deduct[p.ID] += it.Quantity + pricing.FreeItems(it.Quantity)
	}
	if s.cfg.StrictStock {
		for i, it := range req.Items {
			if records[i].Quantity-deduct[it.ProductID] < 0 {
				return nil, fmt.Errorf("product %d %q: %w",
					it.ProductID, records[i].Name, models.ErrInsufficientStock)
			}
		}
	}

	inv := models.Invoice{
		Number:       s.number(models.InvoiceTypeSale),
		Type:         models.InvoiceTypeSale,
		Date:         start,
		Counterparty: req.CustomerName,
		Phone:        req.Phone,
	}
	total := decimal.Zero
	s.store.Update(func() {
		for i, it := range req.Items {
			p := records[i]
			price := pricing.SellingPrice(p.CostPrice)
			amount := price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			free := stock.ApplySale(p, it.Quantity)
			inv.Lines = append(inv.Lines, models.InvoiceLine{
				Name:      p.Name,
				Brand:     p.Brand,
				Quantity:  it.Quantity,
				Free:      free,
				UnitPrice: price,
				Amount:    amount,
			})
			total = total.Add(amount)
		}
	})
	if wantsShipping(req.Shipping) {
		inv.ShippingFee = s.cfg.ShippingFee
		total = total.Add(s.cfg.ShippingFee)
	}
	inv.Total = total

	return s.finish(txid, inv, start)
}

// Restock runs one restock transaction. Same resolve-everything-first policy
// as Sale; a revised cost price takes effect before the line amount is
// computed.
func (s *Service) Restock(req models.RestockRequest) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	txid := uuid.NewString()

	if strings.TrimSpace(req.SupplierName) == "" {
		return nil, errors.New("supplier name is required")
	}
	if strings.ContainsAny(req.SupplierName, `/\`) {
		return nil, errors.New("supplier name must not contain path separators")
	}
	if len(req.Items) == 0 {
		return nil, errors.New("at least one line item is required")
	}

	records := make([]*models.Product, len(req.Items))
	for i, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("line %d: quantity must be positive", i+1)
		}
		if it.NewCost != nil && it.NewCost.IsNegative() {
			return nil, fmt.Errorf("line %d: new cost must not be negative", i+1)
		}
		p, err := s.store.Get(it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("line %d (product %d): %w", i+1, it.ProductID, err)
		}
		records[i] = p
	}

	inv := models.Invoice{
		Number:       s.number(models.InvoiceTypeRestock),
		Type:         models.InvoiceTypeRestock,
		Date:         start,
		Counterparty: req.SupplierName,
	}
	total := decimal.Zero
	s.store.Update(func() {
		for i, it := range req.Items {
			p := records[i]
			stock.ApplyRestock(p, it.Quantity, it.NewCost)
			amount := p.CostPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			inv.Lines = append(inv.Lines, models.InvoiceLine{
				Name:      p.Name,
				Brand:     p.Brand,
				Quantity:  it.Quantity,
				UnitPrice: p.CostPrice,
				Amount:    amount,
			})
			total = total.Add(amount)
		}
	})
	inv.Total = total

	return s.finish(txid, inv, start)
}

// finish renders the invoice, writes it to the invoice dir, mirrors it to
// the display and saves the catalog.
func (s *Service) finish(txid string, inv models.Invoice, start time.Time) (*Result, error) {
	text := Render(inv, s.cfg)
	filename := Filename(inv)
	path := filepath.Join(s.cfg.InvoiceDir, filename)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		// The stock change is already applied in memory but not durable;
		// the next successful save will carry it along.
		zap.S().Errorw("invoice write failed with stock change not yet durable",
			"tx", txid, "file", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvoiceWrite, err)
	}
	fmt.Fprint(s.display, text)

	if err := s.store.Save(); err != nil {
		// The invoice file already exists at this point while the stock
		// change is not durable. Report loudly so the operator can reconcile.
		zap.S().Errorw("catalog save failed after invoice was written",
			"tx", txid, "invoice", filename, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogSave, err)
	}

	zap.S().Infow("invoice generated",
		"tx", txid,
		"type", inv.Type,
		"number", inv.Number,
		"file", filename,
		"total", inv.Total.StringFixed(2),
		"took", s.now().Sub(start).String(),
	)
	return &Result{Number: inv.Number, Filename: filename, Total: inv.Total}, nil
}

// wantsShipping matches the original prompt handling: only an answer whose
// first character is Y (either case) adds the surcharge.
func wantsShipping(answer string) bool {
	return answer != "" && (answer[0] == 'Y' || answer[0] == 'y')
}

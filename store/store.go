// Package store persists the product catalog to a flat text file, one record
// per line:
//
//	name, brand, quantity, cost_price, origin
//
// Fields are separated by a comma; surrounding whitespace is stripped on read
// and re-inserted as ", " on write. There is no quoting or escaping, so a
// field value containing a comma corrupts the record. That is a limitation of
// the file format itself and is not worked around here.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"wecare/models"
)

// seedRecords is written when the inventory file does not exist yet.
var seedRecords = []string{
	"Vitamin C Serum, Garnier, 200, 1000, France",
	"Skin Cleanser, Cetaphil, 100, 280, Switzerland",
	"Sunscreen, Aqualogica, 200, 700, India",
}

// Store holds the catalog in memory for the session. Reads and writes of the
// record list are guarded by an RWMutex; whole sale/restock transactions are
// additionally serialized by the invoice service.
type Store struct {
	path string

	mu       sync.RWMutex
	products []*models.Product
}

// Open loads the catalog from path. When the file is missing it writes the
// seed catalog and retries the load once.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := s.writeSeed(); err != nil {
			return nil, fmt.Errorf("create inventory file %s: %w", path, err)
		}
		if err := s.load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	var products []*models.Product
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := parseRecord(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", s.path, n, err)
		}
		p.ID = len(products) + 1
		products = append(products, p)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

func parseRecord(line string) (*models.Product, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return nil, fmt.Errorf("want 5 fields, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	qty, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("quantity %q: %w", fields[2], err)
	}
	cost, err := decimal.NewFromString(fields[3])
	if err != nil {
		return nil, fmt.Errorf("cost price %q: %w", fields[3], err)
	}
	return &models.Product{
		Name:      fields[0],
		Brand:     fields[1],
		Quantity:  qty,
		CostPrice: cost,
		Origin:    fields[4],
	}, nil
}

func (s *Store) writeSeed() error {
	return os.WriteFile(s.path, []byte(strings.Join(seedRecords, "\n")+"\n"), 0o644)
}

// Save writes the catalog back to its file. The new content goes to a temp
// file in the same directory first and is renamed over the old one, so a
// failed save never leaves a truncated catalog behind.
func (s *Store) Save() error {
	s.mu.RLock()
	var b strings.Builder
	for _, p := range s.products {
		b.WriteString(strings.Join([]string{
			p.Name, p.Brand, strconv.Itoa(p.Quantity), p.CostPrice.String(), p.Origin,
		}, ", "))
		b.WriteByte('\n')
	}
	s.mu.RUnlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".inventory-*")
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// Get returns the live catalog record for id. The returned pointer aliases
// the catalog entry: mutations through it are what Save persists. Callers
// that only read should copy the value.
func (s *Store) Get(id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrProductNotFound
}

// Update runs fn while holding the catalog write lock. Transactions use it
// for their mutation phase so writes through resolved record pointers never
// race with concurrent readers. fn must not call other Store methods.
func (s *Store) Update(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// All returns a copy of every record in catalog order.
func (s *Store) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out
}

// Add appends a new record, assigns it the next id and returns the stored
// copy. The caller is responsible for calling Save.
func (s *Store) Add(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = 1
	if n := len(s.products); n > 0 {
		p.ID = s.products[n-1].ID + 1
	}
	stored := p
	s.products = append(s.products, &stored)
	return stored
}

// Len reports the number of records in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

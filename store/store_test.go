package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"wecare/models"
	"wecare/store"
)

func TestOpenSeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")

	s, err := store.Open(path)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	p, err := s.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Vitamin C Serum", p.Name)
	require.Equal(t, "Garnier", p.Brand)
	require.Equal(t, 200, p.Quantity)
	require.True(t, p.CostPrice.Equal(decimal.NewFromInt(1000)))
	require.Equal(t, "France", p.Origin)

	// the seed file must actually exist on disk now
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte("Lip Balm,  Nivea ,12, 99.5 ,Germany\n"), 0o644))

	s, err := store.Open(path)
	require.NoError(t, err)

	p, err := s.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Lip Balm", p.Name)
	require.Equal(t, "Nivea", p.Brand, "surrounding whitespace is stripped on read")
	require.Equal(t, 12, p.Quantity)
	require.True(t, p.CostPrice.Equal(decimal.RequireFromString("99.5")))
	require.Equal(t, "Germany", p.Origin)

	p.Quantity = 7
	require.NoError(t, s.Save())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Lip Balm, Nivea, 7, 99.5, Germany\n", string(raw))

	again, err := store.Open(path)
	require.NoError(t, err)
	q, err := again.Get(1)
	require.NoError(t, err)
	require.Equal(t, *p, *q)
}

func TestAddAssignsNextID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	s, err := store.Open(path)
	require.NoError(t, err)

	added := s.Add(models.Product{
		Name:      "Face Mask",
		Brand:     "Innisfree",
		Quantity:  40,
		CostPrice: decimal.NewFromInt(120),
		Origin:    "Korea",
	})
	require.Equal(t, 4, added.ID)
	require.NoError(t, s.Save())

	again, err := store.Open(path)
	require.NoError(t, err)
	require.Equal(t, 4, again.Len())
	p, err := again.Get(4)
	require.NoError(t, err)
	require.Equal(t, "Face Mask", p.Name)
}

func TestGetUnknownID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	s, err := store.Open(path)
	require.NoError(t, err)

	_, err = s.Get(99)
	require.ErrorIs(t, err, models.ErrProductNotFound)
	_, err = s.Get(0)
	require.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestOpenRejectsMalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte("Lip Balm, Nivea, twelve, 99.5, Germany\n"), 0o644))

	_, err := store.Open(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "quantity")
}

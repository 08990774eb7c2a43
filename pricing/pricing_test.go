package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"wecare/pricing"
)

func TestSellingPrice(t *testing.T) {
	cases := []struct {
		cost string
		want string
	}{
		{"0", "0"},
		{"280", "840"},
		{"700", "2100"},
		{"1000", "3000"},
		{"0.01", "0.03"},
		{"33.33", "99.99"},
	}
	for _, tc := range cases {
		got := pricing.SellingPrice(decimal.RequireFromString(tc.cost))
		require.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"cost %s: got %s, want %s", tc.cost, got, tc.want)
	}
}

func TestFreeItems(t *testing.T) {
	cases := []struct {
		quantity int
		want     int
	}{
		{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 1}, {6, 2}, {8, 2}, {9, 3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, pricing.FreeItems(tc.quantity), "quantity %d", tc.quantity)
	}
}

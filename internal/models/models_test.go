package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOriginalPrice(t *testing.T) {
	price := decimal.RequireFromString("74.99")

	t.Run("no discount", func(t *testing.T) {
		p := Product{Price: price}
		assert.True(t, price.Equal(p.OriginalPrice()))
	})

	t.Run("zero discount", func(t *testing.T) {
		zero := decimal.Zero
		p := Product{Price: price, DiscountPercentage: &zero}
		assert.True(t, price.Equal(p.OriginalPrice()))
	})

	t.Run("back-computes pre-discount price", func(t *testing.T) {
		pct := decimal.NewFromInt(15)
		p := Product{Price: price, DiscountPercentage: &pct}
		assert.Equal(t, "88.22", p.OriginalPrice().StringFixed(2))
	})

	t.Run("full discount does not divide by zero", func(t *testing.T) {
		pct := decimal.NewFromInt(100)
		p := Product{Price: price, DiscountPercentage: &pct}
		assert.True(t, price.Equal(p.OriginalPrice()))
	})
}

package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartItemLineTotal(t *testing.T) {
	item := CartItem{ProductID: 7, Quantity: 3, UnitPrice: decimal.NewFromFloat(19.99)}

	assert.True(t, decimal.NewFromFloat(59.97).Equal(item.LineTotal()))
}

func TestCartTotal(t *testing.T) {
	t.Run("Sums Line Totals Exactly", func(t *testing.T) {
		cart := &Cart{
			Items: map[string]CartItem{
				"7":  {ProductID: 7, Quantity: 3, UnitPrice: decimal.NewFromFloat(0.10)},
				"12": {ProductID: 12, Quantity: 1, UnitPrice: decimal.NewFromFloat(0.20)},
			},
		}

		// 3*0.10 + 0.20 must come out to exactly 0.50, not a float
		// approximation of it.
		assert.True(t, decimal.NewFromFloat(0.50).Equal(cart.Total()))
	})

	t.Run("Empty Cart Totals Zero", func(t *testing.T) {
		cart := &Cart{Items: map[string]CartItem{}}

		assert.True(t, decimal.Zero.Equal(cart.Total()))
	})
}

func TestClaimsIsAdmin(t *testing.T) {
	assert.True(t, (&Claims{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&Claims{Role: RoleCustomer}).IsAdmin())

	var nilClaims *Claims
	assert.False(t, nilClaims.IsAdmin())
}

package service

import (
	"testing"

	"go-inventory-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuantityPurchase(t *testing.T) {
	got, err := NextQuantity(10, model.TxPurchase, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	got, err = NextQuantity(0, model.TxPurchase, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestNextQuantitySale(t *testing.T) {
	got, err := NextQuantity(10, model.TxSale, 6)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestNextQuantitySaleExactStock(t *testing.T) {
	// A sale exactly equal to remaining stock must succeed, leaving zero.
	got, err := NextQuantity(4, model.TxSale, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestNextQuantitySaleInsufficient(t *testing.T) {
	got, err := NextQuantity(4, model.TxSale, 5)
	require.Error(t, err)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)

	// No mutation: the current quantity comes back unchanged.
	assert.Equal(t, 4, got)
}

func TestNextQuantityAdjustment(t *testing.T) {
	// Absolute set, not a delta.
	got, err := NextQuantity(10, model.TxAdjustment, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = NextQuantity(2, model.TxAdjustment, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, got)
}

func TestNextQuantityClampsAtZero(t *testing.T) {
	got, err := NextQuantity(10, model.TxAdjustment, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestNextQuantityUnknownType(t *testing.T) {
	_, err := NextQuantity(10, model.TransactionType("TRANSFER"), 1)
	assert.Error(t, err)
}

func TestReverseQuantity(t *testing.T) {
	// Deleting a completed PURCHASE subtracts its quantity back out.
	assert.Equal(t, 10, ReverseQuantity(15, model.TxPurchase, 5))
	// Deleting a completed SALE restores its quantity.
	assert.Equal(t, 10, ReverseQuantity(4, model.TxSale, 6))
	// ADJUSTMENT reversal is undefined; quantity stays put.
	assert.Equal(t, 7, ReverseQuantity(7, model.TxAdjustment, 3))
}

func TestReverseQuantityClampsAtZero(t *testing.T) {
	assert.Equal(t, 0, ReverseQuantity(2, model.TxPurchase, 5))
}

func TestSaleThenRestockScenario(t *testing.T) {
	// quantity=10, sale of 6 leaves 4; a further sale of 4 drains to 0.
	q, err := NextQuantity(10, model.TxSale, 6)
	require.NoError(t, err)
	assert.Equal(t, 4, q)
	assert.Equal(t, model.StockStatusLow, model.ComputeStockStatus(q, 5))

	q, err = NextQuantity(q, model.TxSale, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, q)
	assert.Equal(t, model.StockStatusOut, model.ComputeStockStatus(q, 5))
}

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := &InsufficientStockError{Available: 4, Requested: 9}
	assert.Equal(t, "insufficient stock. Available: 4, Requested: 9", err.Error())
}

func TestSupplierInUseErrorMessage(t *testing.T) {
	err := &SupplierInUseError{ProductCount: 3}
	assert.Contains(t, err.Error(), "3 products")
}

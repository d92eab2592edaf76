package service

import (
	"errors"
	"fmt"

	"go-inventory-api/internal/model"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrSupplierNotFound     = errors.New("supplier not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrSKUExists            = errors.New("SKU already exists")
	ErrEmailExists          = errors.New("email already exists")
	ErrCompletedTxImmutable = errors.New("cannot modify quantity of completed transaction")
)

// InsufficientStockError is returned when a sale asks for more units than are
// on hand. No mutation happens when it is returned.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock. Available: %d, Requested: %d", e.Available, e.Requested)
}

// SupplierInUseError blocks supplier deletion while active products reference it.
type SupplierInUseError struct {
	ProductCount int64
}

func (e *SupplierInUseError) Error() string {
	return fmt.Sprintf("cannot delete supplier: %d products are associated with this supplier", e.ProductCount)
}

// NextQuantity computes the on-hand quantity after applying a transaction
// intent. PURCHASE adds, SALE subtracts (and requires enough stock),
// ADJUSTMENT sets the quantity absolutely. The result is clamped at 0.
func NextQuantity(current int, txType model.TransactionType, quantity int) (int, error) {
	switch txType {
	case model.TxPurchase:
		return clampQuantity(current + quantity), nil
	case model.TxSale:
		if current < quantity {
			return current, &InsufficientStockError{Available: current, Requested: quantity}
		}
		return clampQuantity(current - quantity), nil
	case model.TxAdjustment:
		return clampQuantity(quantity), nil
	default:
		return current, fmt.Errorf("unsupported transaction type: %s", txType)
	}
}

// ReverseQuantity undoes a previously applied transaction: a PURCHASE is
// reversed by subtraction, a SALE by addition. ADJUSTMENT carries no delta to
// undo, so the quantity is returned unchanged. The result is clamped at 0.
func ReverseQuantity(current int, txType model.TransactionType, quantity int) int {
	switch txType {
	case model.TxPurchase:
		return clampQuantity(current - quantity)
	case model.TxSale:
		return clampQuantity(current + quantity)
	default:
		return current
	}
}

func clampQuantity(quantity int) int {
	if quantity < 0 {
		return 0
	}
	return quantity
}

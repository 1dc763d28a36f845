package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrCartEmpty is returned when a conversion finds no items under the
	// cart row lock.
	ErrCartEmpty = errors.New("cart has no items")

	// ErrVersionConflict means a cart write lost the optimistic race and
	// should be retried from a fresh read.
	ErrVersionConflict = errors.New("cart was modified concurrently")
)

// MissingProductError: a cart item references a product that no longer
// exists (deleted externally after the item was added).
type MissingProductError struct {
	ProductID int64
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("referenced product %d missing", e.ProductID)
}

// InsufficientStockError names the first product whose requested
// quantity exceeds current stock. The whole conversion aborts.
type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

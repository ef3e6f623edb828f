package contracts

import (
	"context"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
)

// Catalog is the durable product table. Every mutating call commits before
// it returns; there is no transaction spanning calls.
type Catalog interface {
	// AddProduct inserts a new row. A taken name returns an error wrapping
	// domain.ErrDuplicateProduct and leaves the table unchanged.
	AddProduct(ctx context.Context, product domain.Product) error

	// RemoveProduct deletes the row with the given name. A missing name is a
	// no-op, not an error.
	RemoveProduct(ctx context.Context, name string) error

	// ListProducts returns every row in storage order. Callers must not rely
	// on the ordering.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns one row, or domain.ErrProductNotFound.
	GetProduct(ctx context.Context, name string) (domain.Product, error)

	// Close releases the store. The catalog is unusable afterwards.
	Close() error
}

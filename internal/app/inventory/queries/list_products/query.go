package list_products

import (
	"context"

	"github.com/light-bringer/freshmart/internal/app/inventory/contracts"
	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
)

// Query handles the list products query use case.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new list products query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute returns the whole catalog in storage order.
func (q *Query) Execute(ctx context.Context) ([]domain.Product, error) {
	return q.catalog.ListProducts(ctx)
}

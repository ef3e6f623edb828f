package add_to_order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/freshmart/internal/app/inventory/contracts"
	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
)

// Request names the product and how many to order.
type Request struct {
	Name     string
	Quantity int64
}

// Interactor handles the add to order use case.
type Interactor struct {
	catalog contracts.Catalog
	logger  *zap.Logger
}

// NewInteractor creates a new add to order interactor.
func NewInteractor(catalog contracts.Catalog, logger *zap.Logger) *Interactor {
	return &Interactor{
		catalog: catalog,
		logger:  logger.Named("add_to_order"),
	}
}

// Execute snapshots the product from the catalog and appends it to order.
// Stock is neither checked nor decremented.
func (i *Interactor) Execute(ctx context.Context, order *domain.Order, req *Request) (domain.OrderLine, error) {
	product, err := i.catalog.GetProduct(ctx, req.Name)
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("lookup %q: %w", req.Name, err)
	}

	order.AddLine(product, req.Quantity)

	i.logger.Info("line added",
		zap.String("order_id", order.ID()),
		zap.String("name", product.Name()),
		zap.Int64("quantity", req.Quantity),
	)
	return domain.OrderLine{Product: product, Quantity: req.Quantity}, nil
}

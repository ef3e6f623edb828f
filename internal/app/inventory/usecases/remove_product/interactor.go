package remove_product

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/freshmart/internal/app/inventory/contracts"
)

// Interactor handles the remove product use case.
type Interactor struct {
	catalog contracts.Catalog
	logger  *zap.Logger
}

// NewInteractor creates a new remove product interactor.
func NewInteractor(catalog contracts.Catalog, logger *zap.Logger) *Interactor {
	return &Interactor{
		catalog: catalog,
		logger:  logger.Named("remove_product"),
	}
}

// Execute deletes the named product. Removing a name that is not in the
// catalog succeeds.
func (i *Interactor) Execute(ctx context.Context, name string) error {
	if err := i.catalog.RemoveProduct(ctx, name); err != nil {
		i.logger.Warn("remove product failed", zap.String("name", name), zap.Error(err))
		return err
	}

	i.logger.Info("product removed", zap.String("name", name))
	return nil
}

package add_product

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/freshmart/internal/app/inventory/contracts"
	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
)

// Request contains the data needed to add a product.
type Request struct {
	Name     string
	Price    domain.Money
	Quantity int64
}

// Interactor handles the add product use case.
type Interactor struct {
	catalog contracts.Catalog
	logger  *zap.Logger
}

// NewInteractor creates a new add product interactor.
func NewInteractor(catalog contracts.Catalog, logger *zap.Logger) *Interactor {
	return &Interactor{
		catalog: catalog,
		logger:  logger.Named("add_product"),
	}
}

// Execute stores the product and returns it. A taken name comes back as
// domain.ErrDuplicateProduct for the caller to report.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Product, error) {
	if req.Name == "" {
		return domain.Product{}, domain.ErrEmptyName
	}

	product := domain.NewProduct(req.Name, req.Price, req.Quantity)
	if err := i.catalog.AddProduct(ctx, product); err != nil {
		i.logger.Warn("add product failed", zap.String("name", req.Name), zap.Error(err))
		return domain.Product{}, err
	}

	i.logger.Info("product added",
		zap.String("name", product.Name()),
		zap.Stringer("price", product.Price()),
		zap.Int64("quantity", product.Quantity()),
	)
	return product, nil
}

package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/light-bringer/freshmart/internal/app/inventory/contracts"
	"github.com/light-bringer/freshmart/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/freshmart/internal/app/inventory/repo"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/add_product"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/add_to_order"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/generate_receipt"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/remove_product"
	"github.com/light-bringer/freshmart/internal/pkg/clock"
	"github.com/light-bringer/freshmart/internal/pkg/config"
	"github.com/light-bringer/freshmart/internal/transport/cli"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Catalog contracts.Catalog
	Shell   *cli.Handler
}

// NewServiceOptions opens the configured catalog and wires the shell on top
// of it. The shell writes to out.
func NewServiceOptions(ctx context.Context, cfg *config.Config, out io.Writer, logger *zap.Logger) (*ServiceOptions, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// 1. Open the catalog backend
	catalog, err := openCatalog(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()

	// 3. Create command use cases
	addProductUseCase := add_product.NewInteractor(catalog, logger)
	removeProductUseCase := remove_product.NewInteractor(catalog, logger)
	addToOrderUseCase := add_to_order.NewInteractor(catalog, logger)
	generateReceiptUseCase := generate_receipt.NewInteractor(clk, cfg.Receipt.Dir, logger)

	// 4. Create query use cases
	listProductsQuery := list_products.NewQuery(catalog)

	// 5. Create the shell
	shell := cli.NewHandler(
		addProductUseCase,
		removeProductUseCase,
		addToOrderUseCase,
		generateReceiptUseCase,
		listProductsQuery,
		out,
		logger,
	)

	return &ServiceOptions{
		Catalog: catalog,
		Shell:   shell,
	}, nil
}

func openCatalog(ctx context.Context, store config.StoreConfig, logger *zap.Logger) (contracts.Catalog, error) {
	if store.Driver == config.DriverSpanner {
		catalog, err := repo.OpenSpannerCatalog(ctx, store.SpannerDatabase, logger)
		if err != nil {
			return nil, err
		}
		return catalog, nil
	}

	catalog, err := repo.OpenSQLiteCatalog(ctx, store.Path, logger)
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() error {
	if s.Catalog != nil {
		return s.Catalog.Close()
	}
	return nil
}

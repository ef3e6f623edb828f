package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/freshmart/internal/app/inventory/contracts"
	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/models/m_product"
	"github.com/light-bringer/freshmart/internal/pkg/committer"
	"github.com/light-bringer/freshmart/internal/pkg/query"
)

// SpannerCatalog implements contracts.Catalog on a Cloud Spanner database
// (or the emulator, when SPANNER_EMULATOR_HOST is set). The database itself
// must already exist; the table is created on open.
type SpannerCatalog struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_product.Model
	logger    *zap.Logger
}

var _ contracts.Catalog = (*SpannerCatalog)(nil)

// OpenSpannerCatalog connects to db and ensures the products table. Errors
// wrap domain.ErrStorage and leave no client open.
func OpenSpannerCatalog(ctx context.Context, db string, log *zap.Logger) (*SpannerCatalog, error) {
	log = log.Named("catalog").With(zap.String("database", db))

	if err := ensureSpannerTable(ctx, db); err != nil {
		return nil, fmt.Errorf("%w: create table in %s: %w", domain.ErrStorage, db, err)
	}

	client, err := spanner.NewClient(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrStorage, db, err)
	}

	log.Info("catalog opened")

	return &SpannerCatalog{
		client:    client,
		committer: committer.NewCommitter(client),
		model:     m_product.NewModel(),
		logger:    log,
	}, nil
}

func ensureSpannerTable(ctx context.Context, db string) error {
	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: []string{m_product.SpannerDDL},
	})
	if err != nil {
		return fmt.Errorf("failed to start DDL update: %w", err)
	}
	return op.Wait(ctx)
}

// AddProduct applies a single insert mutation.
func (c *SpannerCatalog) AddProduct(ctx context.Context, product domain.Product) error {
	plan := committer.NewPlan()
	plan.Add(c.model.InsertMut(domainToData(product)))

	if err := c.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateProduct, product.Name())
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}

	c.logger.Debug("product added", zap.String("name", product.Name()))
	return nil
}

// RemoveProduct applies a delete mutation; Spanner ignores missing keys.
func (c *SpannerCatalog) RemoveProduct(ctx context.Context, name string) error {
	plan := committer.NewPlan()
	plan.Add(c.model.DeleteMut(name))

	if err := c.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	c.logger.Debug("product removed", zap.String("name", name))
	return nil
}

// ListProducts reads the whole table in storage order.
func (c *SpannerCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	stmt := query.From(m_product.TableName).Select(m_product.Columns...).Build()
	return c.queryProducts(ctx, stmt)
}

// GetProduct reads one row by name.
func (c *SpannerCatalog) GetProduct(ctx context.Context, name string) (domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Eq(m_product.Name, name)).
		Limit(1).
		Build()

	products, err := c.queryProducts(ctx, stmt)
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return products[0], nil
}

func (c *SpannerCatalog) queryProducts(ctx context.Context, stmt spanner.Statement) ([]domain.Product, error) {
	iter := c.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]domain.Product, 0)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		product, err := dataToDomain(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// Close closes the Spanner client.
func (c *SpannerCatalog) Close() error {
	c.client.Close()
	return nil
}

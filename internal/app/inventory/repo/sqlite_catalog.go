package repo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/light-bringer/freshmart/internal/app/inventory/contracts"
	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/models/m_product"
	"github.com/light-bringer/freshmart/internal/pkg/logger"
)

// SQLiteCatalog implements contracts.Catalog on a single SQLite file.
type SQLiteCatalog struct {
	db     *gorm.DB
	path   string
	logger *zap.Logger
}

var _ contracts.Catalog = (*SQLiteCatalog)(nil)

// OpenSQLiteCatalog opens or creates the store at path and makes sure the
// products table exists. Existing rows are left alone. On failure nothing
// stays open and the error wraps domain.ErrStorage.
func OpenSQLiteCatalog(ctx context.Context, path string, log *zap.Logger) (*SQLiteCatalog, error) {
	log = log.Named("catalog").With(zap.String("path", path))

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.NewGormLogger(log, logger.GormLevel(log.Level().String())),
		TranslateError: true,
	})
	if err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrStorage, path, err)
	}

	// One connection: the catalog has a single writer, and SQLite's
	// per-connection state (":memory:" in particular) must not be split.
	sqlDB, err := db.DB()
	if err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrStorage, path, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).Exec(m_product.SQLiteDDL).Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: create table in %s: %w", domain.ErrStorage, path, err)
	}

	log.Info("catalog opened")

	return &SQLiteCatalog{
		db:     db,
		path:   path,
		logger: log,
	}, nil
}

// AddProduct inserts one row in its own implicit transaction.
func (c *SQLiteCatalog) AddProduct(ctx context.Context, product domain.Product) error {
	err := c.db.WithContext(ctx).Create(domainToData(product)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateProduct, product.Name())
	}
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	c.logger.Debug("product added", zap.String("name", product.Name()))
	return nil
}

// RemoveProduct deletes by name and reports how many rows went away.
func (c *SQLiteCatalog) RemoveProduct(ctx context.Context, name string) error {
	result := c.db.WithContext(ctx).
		Where(m_product.Name+" = ?", name).
		Delete(&m_product.Data{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}

	c.logger.Debug("product removed", zap.String("name", name), zap.Int64("rows", result.RowsAffected))
	return nil
}

// ListProducts selects every row without ORDER BY.
func (c *SQLiteCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var rows []m_product.Data
	if err := c.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for i := range rows {
		product, err := dataToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// GetProduct reads a single row by name.
func (c *SQLiteCatalog) GetProduct(ctx context.Context, name string) (domain.Product, error) {
	var data m_product.Data
	err := c.db.WithContext(ctx).
		Where(m_product.Name+" = ?", name).
		Take(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to read product: %w", err)
	}
	return dataToDomain(&data)
}

// Close closes the underlying connection.
func (c *SQLiteCatalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// closeQuietly releases whatever gorm.Open managed to acquire before failing.
func closeQuietly(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Package testutil holds fixtures shared by use case and transport tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/app/inventory/repo"
	"github.com/light-bringer/freshmart/internal/pkg/clock"
)

// ReceiptTime is the fixed instant used by receipt tests.
var ReceiptTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// OpenCatalog opens a SQLite catalog in a temp dir, closed at test end.
func OpenCatalog(t *testing.T, products ...domain.Product) *repo.SQLiteCatalog {
	t.Helper()

	ctx := context.Background()
	catalog, err := repo.OpenSQLiteCatalog(ctx, filepath.Join(t.TempDir(), "inventory.db"), zaptest.NewLogger(t))
	require.NoError(t, err, "failed to open catalog")
	t.Cleanup(func() { _ = catalog.Close() })

	for _, p := range products {
		require.NoError(t, catalog.AddProduct(ctx, p), "failed to seed %s", p.Name())
	}
	return catalog
}

// Product builds a product from plain values.
func Product(name string, price float64, quantity int64) domain.Product {
	return domain.NewProduct(name, domain.NewMoneyFromFloat(price), quantity)
}

// Apple and Bread are the products from the reference receipt.
func Apple() domain.Product { return Product("Apple", 1.50, 100) }
func Bread() domain.Product { return Product("Bread", 3.00, 100) }

// NewFixedClock creates a mock clock fixed at ReceiptTime.
func NewFixedClock() *clock.MockClock {
	return clock.NewMockClock(ReceiptTime)
}

package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/pkg/config"
)

func TestNewServiceOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite session end to end", func(t *testing.T) {
		dir := t.TempDir()
		cfg := &config.Config{
			Store:   config.StoreConfig{Driver: config.DriverSQLite, Path: filepath.Join(dir, "inventory.db")},
			Receipt: config.ReceiptConfig{Dir: filepath.Join(dir, "receipts")},
		}
		out := &bytes.Buffer{}

		opts, err := NewServiceOptions(ctx, cfg, out, zaptest.NewLogger(t))
		require.NoError(t, err)
		defer opts.Close()

		script := "add Apple 1.50 100\norder Apple 3\nreceipt\n"
		require.NoError(t, opts.Shell.Run(ctx, strings.NewReader(script), false))
		assert.Contains(t, out.String(), "Apple x3: $4.50\n")
		assert.Contains(t, out.String(), "Total Price: $4.50\n")

		archived, err := os.ReadDir(filepath.Join(dir, "receipts"))
		require.NoError(t, err)
		assert.Len(t, archived, 1)

		products, err := opts.Catalog.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, int64(100), products[0].Quantity())
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Driver: "mysql"}}

		opts, err := NewServiceOptions(ctx, cfg, &bytes.Buffer{}, zaptest.NewLogger(t))
		assert.Error(t, err)
		assert.Nil(t, opts)
	})

	t.Run("unopenable store", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "missing", "inventory.db"),
		}}

		opts, err := NewServiceOptions(ctx, cfg, &bytes.Buffer{}, zaptest.NewLogger(t))
		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.Nil(t, opts)
	})
}

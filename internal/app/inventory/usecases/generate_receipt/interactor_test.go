package generate_receipt

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/pkg/testutil"
)

const referenceReceipt = "Order Receipt\n" +
	"Date: 2024-01-01 00:00:00\n" +
	"\n" +
	"Products:\n" +
	"Apple x2: $3.00\n" +
	"Bread x1: $3.00\n" +
	"\n" +
	"Total Price: $6.00"

func referenceOrder() *domain.Order {
	order := domain.NewOrder()
	order.AddLine(testutil.Apple(), 2)
	order.AddLine(testutil.Bread(), 1)
	return order
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("renders with the injected clock", func(t *testing.T) {
		uc := NewInteractor(testutil.NewFixedClock(), "", zaptest.NewLogger(t))

		receipt, err := uc.Execute(ctx, referenceOrder())
		require.NoError(t, err)
		assert.Equal(t, referenceReceipt, receipt)
	})

	t.Run("empty order refused", func(t *testing.T) {
		uc := NewInteractor(testutil.NewFixedClock(), "", zaptest.NewLogger(t))

		_, err := uc.Execute(ctx, domain.NewOrder())
		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	})

	t.Run("cleared order refused", func(t *testing.T) {
		uc := NewInteractor(testutil.NewFixedClock(), "", zaptest.NewLogger(t))
		order := referenceOrder()
		order.Clear()

		_, err := uc.Execute(ctx, order)
		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	})

	t.Run("archives when a dir is configured", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "receipts")
		uc := NewInteractor(testutil.NewFixedClock(), dir, zaptest.NewLogger(t))
		order := referenceOrder()

		_, err := uc.Execute(ctx, order)
		require.NoError(t, err)

		path := filepath.Join(dir, "receipt-"+order.ID()+"-20240101000000.txt")
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, referenceReceipt+"\n", string(content))
	})

	t.Run("archive failure surfaces", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		uc := NewInteractor(testutil.NewFixedClock(), filepath.Join(blocker, "receipts"), zaptest.NewLogger(t))

		_, err := uc.Execute(ctx, referenceOrder())
		assert.Error(t, err)
	})
}

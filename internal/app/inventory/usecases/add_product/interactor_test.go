package add_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/pkg/testutil"
)

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	price, _ := domain.ParseMoney("1.50")

	t.Run("adds product", func(t *testing.T) {
		catalog := testutil.OpenCatalog(t)
		uc := NewInteractor(catalog, zaptest.NewLogger(t))

		p, err := uc.Execute(ctx, &Request{Name: "Apple", Price: price, Quantity: 10})
		require.NoError(t, err)
		assert.Equal(t, "Apple", p.Name())

		stored, err := catalog.GetProduct(ctx, "Apple")
		require.NoError(t, err)
		assert.True(t, stored.Equals(p))
	})

	t.Run("duplicate is recoverable", func(t *testing.T) {
		catalog := testutil.OpenCatalog(t, testutil.Apple())
		uc := NewInteractor(catalog, zaptest.NewLogger(t))

		_, err := uc.Execute(ctx, &Request{Name: "Apple", Price: price, Quantity: 10})
		assert.ErrorIs(t, err, domain.ErrDuplicateProduct)

		_, err = uc.Execute(ctx, &Request{Name: "Pear", Price: price, Quantity: 1})
		assert.NoError(t, err)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		catalog := testutil.OpenCatalog(t)
		uc := NewInteractor(catalog, zaptest.NewLogger(t))

		_, err := uc.Execute(ctx, &Request{Name: "", Price: price, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrEmptyName)

		products, err := catalog.ListProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

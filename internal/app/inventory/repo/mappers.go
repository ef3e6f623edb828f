package repo

import (
	"fmt"
	"math"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/models/m_product"
)

func domainToData(product domain.Product) *m_product.Data {
	return &m_product.Data{
		Name:     product.Name(),
		Price:    product.Price().Float64(),
		Quantity: product.Quantity(),
	}
}

// dataToDomain rejects rows whose price is not a finite number; such a row
// can only come from a file written outside this program.
func dataToDomain(data *m_product.Data) (domain.Product, error) {
	if math.IsInf(data.Price, 0) || math.IsNaN(data.Price) {
		return domain.Product{}, fmt.Errorf("%w: product %q has non-finite price %v",
			domain.ErrStorage, data.Name, data.Price)
	}
	return domain.NewProduct(data.Name, domain.NewMoneyFromFloat(data.Price), data.Quantity), nil
}

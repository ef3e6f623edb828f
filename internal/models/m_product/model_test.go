package m_product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel_Mutations(t *testing.T) {
	m := NewModel()

	assert.NotNil(t, m.InsertMut(&Data{Name: "Apple", Price: 1.5, Quantity: 10}))
	assert.NotNil(t, m.DeleteMut("Apple"))
}

func TestData_TableName(t *testing.T) {
	assert.Equal(t, "products", Data{}.TableName())
	assert.Equal(t, []string{"name", "price", "quantity"}, Columns)
}

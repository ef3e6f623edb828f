package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for Spanner mutations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a plain insert. Unlike InsertOrUpdate it fails with
// AlreadyExists when the name is taken.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.Name,
			data.Price,
			data.Quantity,
		},
	)
}

// DeleteMut creates a delete by name. Deleting a missing key is a no-op.
func (m *Model) DeleteMut(name string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{name})
}

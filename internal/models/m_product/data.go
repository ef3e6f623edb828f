package m_product

// Data is one row of the products table. The same struct is scanned by gorm
// (SQLite) and by spanner.Row.ToStruct.
type Data struct {
	Name     string  `gorm:"column:name;primaryKey" spanner:"name"`
	Price    float64 `gorm:"column:price" spanner:"price"`
	Quantity int64   `gorm:"column:quantity" spanner:"quantity"`
}

// TableName tells gorm which table Data maps to.
func (Data) TableName() string {
	return TableName
}

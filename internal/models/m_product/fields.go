package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	Name     = "name"
	Price    = "price"
	Quantity = "quantity"
)

// Columns lists every column in table order.
var Columns = []string{Name, Price, Quantity}

// SQLiteDDL creates the table in a SQLite file. The schema is fixed; there is
// no migration path.
const SQLiteDDL = `CREATE TABLE IF NOT EXISTS products (
	name TEXT PRIMARY KEY,
	price REAL,
	quantity INTEGER
)`

// SpannerDDL is the Spanner equivalent of SQLiteDDL.
const SpannerDDL = `CREATE TABLE IF NOT EXISTS products (
	name STRING(MAX) NOT NULL,
	price FLOAT64,
	quantity INT64
) PRIMARY KEY (name)`

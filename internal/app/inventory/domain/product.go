package domain

// Product is an immutable catalog entry. It is passed by value, so an order
// line holds its own copy and later catalog changes never reach it.
type Product struct {
	name     string
	price    Money
	quantity int64
}

// NewProduct builds a Product. Price and quantity are not range checked;
// negative values are stored as given.
func NewProduct(name string, price Money, quantity int64) Product {
	return Product{
		name:     name,
		price:    price,
		quantity: quantity,
	}
}

// Name is the catalog key.
func (p Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p Product) Price() Money {
	return p.price
}

// Quantity returns the stock count recorded in the catalog.
func (p Product) Quantity() int64 {
	return p.quantity
}

// Equals compares all three fields, prices by decimal value.
func (p Product) Equals(other Product) bool {
	return p.name == other.name &&
		p.price.Equals(other.price) &&
		p.quantity == other.quantity
}

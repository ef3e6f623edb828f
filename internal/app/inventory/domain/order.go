package domain

import (
	"github.com/google/uuid"
)

// OrderLine is a product snapshot with the quantity requested.
type OrderLine struct {
	Product  Product
	Quantity int64
}

// Amount returns price * quantity, unrounded.
func (l OrderLine) Amount() Money {
	return l.Product.Price().Times(l.Quantity)
}

// Order accumulates lines for one session. It is never persisted and is not
// safe for concurrent use.
type Order struct {
	id    string
	lines []OrderLine
}

// NewOrder creates an empty order with a fresh session ID.
func NewOrder() *Order {
	return &Order{
		id:    uuid.New().String(),
		lines: make([]OrderLine, 0),
	}
}

// ID identifies the session. It survives Clear.
func (o *Order) ID() string {
	return o.id
}

// AddLine appends a line unconditionally. Neither the quantity nor the
// product's presence in the catalog is checked.
func (o *Order) AddLine(product Product, quantity int64) {
	o.lines = append(o.lines, OrderLine{Product: product, Quantity: quantity})
}

// Clear empties the order.
func (o *Order) Clear() {
	o.lines = o.lines[:0]
}

// Lines returns a copy of the lines in insertion order.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// IsEmpty returns true if no lines have been added since the last Clear.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Total sums the unrounded line amounts.
func (o *Order) Total() Money {
	total := Zero
	for _, line := range o.lines {
		total = total.Add(line.Amount())
	}
	return total
}

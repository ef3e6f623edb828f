package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount. Catalog prices arrive as floats from the
// REAL column and are converted once, on the way in, so line amounts and totals
// share one rounding policy.
type Money struct {
	amount decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{amount: decimal.Zero}

// NewMoneyFromFloat converts a stored float using its shortest round-tripping
// decimal form (1.5 becomes exactly 1.5, not 1.4999...). f must be finite.
func NewMoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// NewMoneyFromDecimal wraps an existing decimal value.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// ParseMoney parses a user-entered amount such as "1.50" or "-3". Amounts
// too large for the REAL column (1e400) are rejected.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	if f := d.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return Zero, fmt.Errorf("%w: %q out of range", ErrInvalidPrice, s)
	}
	return Money{amount: d}, nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by an integer count.
func (m Money) Times(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n))}
}

// IsNegative returns true if the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equals compares by value, ignoring trailing zeros (1.5 == 1.50).
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the nearest float64, used only for the REAL column.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Decimal exposes the underlying value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats with exactly two fractional digits, rounding half away from zero.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

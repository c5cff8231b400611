package kernel

import (
	"github.com/shopspring/decimal"

	"commerce/internal/pkg/errs"
)

// Money is a value object for monetary amounts. It wraps decimal.Decimal so
// arithmetic is exact and rounding is explicit; entities decide where a value
// must be positive or may be zero.
//
// The zero value is a valid zero amount. Intermediate results (line
// extensions, sums) stay unrounded; rounding to the 2-decimal money scale
// happens once, at the aggregate total, via Round2.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a decimal amount as Money.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a decimal string such as "19.99".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the exact product of the amount and an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Round2 rounds half-up to two decimal places. 44.985 rounds to 44.99.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts numerically, so 5.0 equals 5.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the exact decimal representation without forced scale.
func (m Money) String() string {
	return m.amount.String()
}

// StringFixed2 formats the amount with exactly two decimal places.
func (m Money) StringFixed2() string {
	return m.amount.StringFixed(2)
}

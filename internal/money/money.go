// Package money represents dollar amounts as integer cents so that
// chip arithmetic and payout comparisons never depend on binary
// floating point equality.
package money

import (
	"fmt"
	"math"
)

// Cents is a dollar amount in hundredths of a dollar.
type Cents int64

// FromDollars converts a float dollar amount to Cents, rounding to the
// nearest cent. This is the only place float input crosses into the
// integer domain.
func FromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

// Dollars returns the amount as a float64 dollar value.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Abs returns the absolute value of the amount.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// MulRatio multiplies the amount by num/den, rounding to the nearest
// cent. Used for payout ratios like 3:2.
func (c Cents) MulRatio(num, den int64) Cents {
	v := float64(c) * float64(num) / float64(den)
	return Cents(math.Round(v))
}

// String formats the amount as a dollar string, dropping the cents
// part for whole-dollar amounts (e.g. "$25", "$2.50").
func (c Cents) String() string {
	if c%100 == 0 {
		return fmt.Sprintf("$%d", c/100)
	}
	return fmt.Sprintf("$%.2f", c.Dollars())
}

// Package money provides a fixed-point amount type for ledger arithmetic.
// Amounts are stored as integer minor units (cents), so sums and differences
// are exact and conservation checks can compare against zero directly.
package money

import (
	"fmt"
	"math"
)

// Money is an amount in minor currency units (cents).
type Money int64

// FromUnits creates a Money from a raw minor-unit count.
func FromUnits(units int64) Money {
	return Money(units)
}

// FromFloat converts a major-unit decimal (e.g. a JSON number like 12.34)
// into minor units, rounding half away from zero. This is the only place
// floating point touches an amount: at the request boundary.
func FromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// Float64 returns the amount in major units for presentation.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// Units returns the raw minor-unit count, for persistence.
func (m Money) Units() int64 {
	return int64(m)
}

// Add returns m + o.
func (m Money) Add(o Money) Money { return m + o }

// Sub returns m - o.
func (m Money) Sub(o Money) Money { return m - o }

// Neg returns -m.
func (m Money) Neg() Money { return -m }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m == 0 }

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool { return m > 0 }

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool { return m < 0 }

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// SplitEven divides the amount into n shares that sum exactly to m.
// The integer remainder is distributed one minor unit at a time to the
// earliest shares, so no money appears or vanishes in the division.
// n must be positive.
func (m Money) SplitEven(n int) []Money {
	if n <= 0 {
		return nil
	}

	base := int64(m) / int64(n)
	rem := int64(m) % int64(n)

	shares := make([]Money, n)
	for i := range shares {
		shares[i] = Money(base)
	}

	// rem carries the sign of m; spread |rem| single units across the
	// first shares in the matching direction.
	step := int64(1)
	if rem < 0 {
		step = -1
		rem = -rem
	}
	for i := int64(0); i < rem; i++ {
		shares[i] += Money(step)
	}

	return shares
}

// String formats the amount as a plain decimal, e.g. "12.34" or "-0.05".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

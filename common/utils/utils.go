package utils

import (
	"github.com/shopspring/decimal"
)

const (
	Epsilon = 1.0e-6
)

var (
	EpsilonDecimal = decimal.NewFromFloat(Epsilon)
)

// EqualWithTolerance compares two decimal.Decimal values and returns true if they are equal within
// the tolerance defined by the EpsilonDecimal variable (which is created from the Epsilon constant).
func EqualWithTolerance(d1 decimal.Decimal, d2 decimal.Decimal) bool {
	diff := d1.Sub(d2)
	absDiff := diff.Abs()

	return absDiff.LessThanOrEqual(EpsilonDecimal)
}

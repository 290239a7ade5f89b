// Package moneyutil provides small helpers for monetary and rate arithmetic
// on top of shopspring decimals. All engine math stays in decimal space;
// binary floats never touch a money path.
package moneyutil

import (
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// One is the decimal constant 1.
var One = decimal.NewFromInt(1)

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// ClampNonNegative floors an amount at zero.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// MonthlyRate converts an annual rate to its monthly equivalent (annual/12),
// the convention used throughout the projection math.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// GrowthFactor returns (1+monthlyRate)^months for a non-negative whole number
// of months.
func GrowthFactor(monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return One
	}
	return One.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
}

// RoundCents rounds an amount to whole cents using banker's rounding.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

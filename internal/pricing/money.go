package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every monetary value carries.
const Scale = 2

// Round normalises a monetary value to two fractional digits, rounding
// half-up (ties away from zero). Every intermediate result of the receipt
// calculation passes through Round before it is used again, so cumulative
// rounding is part of the defined behaviour.
func Round(v decimal.Decimal) decimal.Decimal {
	return v.Round(Scale)
}

// Format renders a monetary value with exactly two fractional digits.
func Format(v decimal.Decimal) string {
	return v.StringFixed(Scale)
}

// Parse converts a decimal literal such as "12.5" into a monetary value.
func Parse(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return d, nil
}

// PercentOf returns value * percent / 100, rounded to money scale.
func PercentOf(value decimal.Decimal, percent int) decimal.Decimal {
	return Round(value.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)))
}

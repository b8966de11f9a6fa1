package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromFloat creates decimal from float with cent rounding
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// RoundCents rounds to the nearest cent, half away from zero (never truncation)
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf computes: amount * (percentage/100), rounded to cents
func PercentOf(amount, percentage decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return amount.Mul(percentage).Div(hundred).Round(2)
}

// ExpectedVAT computes the VAT due on a net amount at the given percent rate
func ExpectedVAT(net, ratePercent decimal.Decimal) decimal.Decimal {
	return PercentOf(net, ratePercent)
}

// Sum sums a slice of decimals without intermediate rounding
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsPositive returns true if decimal is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

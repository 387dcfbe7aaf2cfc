package domain

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxMagnitude is the number of integer digits of the largest float64.
	// Amounts with more digits are infinite.
	maxMagnitude = 309
	// minExponent bounds the precision kept for tiny amounts.
	minExponent = -64
)

// ParseAmount converts a stored decimal string into a decimal.Decimal.
// Blank, malformed and non-finite input ("NaN", "Infinity", "1e400") yield
// zero.
func ParseAmount(s string) decimal.Decimal {
	d, _ := ParseAmountOK(s)
	return d
}

// ParseAmountOK is ParseAmount that also reports whether s held a finite
// decimal. Blank input is not a decimal.
func ParseAmountOK(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return bound(d)
}

// IsAmount reports whether s parses as a finite decimal.
func IsAmount(s string) bool {
	_, ok := ParseAmountOK(s)
	return ok
}

// bound keeps d within float64 range. Values beyond it are reported as not
// finite; digits below 10^minExponent are dropped so that arithmetic on the
// result stays cheap.
func bound(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsZero() {
		return decimal.Zero, true
	}
	magnitude := int64(d.NumDigits()) + int64(d.Exponent())
	switch {
	case magnitude > maxMagnitude:
		return decimal.Zero, false
	case magnitude == maxMagnitude && math.IsInf(d.InexactFloat64(), 0):
		return decimal.Zero, false
	case magnitude < minExponent:
		return decimal.Zero, true
	case d.Exponent() < minExponent:
		return d.Truncate(-minExponent), true
	}
	return d, true
}

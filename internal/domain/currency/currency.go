// Package currency converts between minor-unit integers and major-unit
// decimal strings.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

const defaultDecimals = 2

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Decimals returns the number of subunit digits for a currency code. Every
// currency the gateway settles in uses two.
func Decimals(code string) int32 {
	return defaultDecimals
}

// ToMinorUnits parses a major-unit decimal string ("0.70") and returns the
// amount in the smallest subunit (70), rounding half away from zero.
func ToMinorUnits(amount string, code string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidAmount, amount, err)
	}
	minor := d.Shift(Decimals(code)).Round(0)
	if minor.LessThan(minInt64) || minor.GreaterThan(maxInt64) {
		return 0, fmt.Errorf("%w %q: out of int64 range", ErrInvalidAmount, amount)
	}
	return minor.IntPart(), nil
}

// ToMajorUnits formats a minor-unit amount (5000) as a fixed-point major-unit
// string ("50.00").
func ToMajorUnits(amount int64, code string) string {
	places := Decimals(code)
	return decimal.New(amount, -places).StringFixed(places)
}

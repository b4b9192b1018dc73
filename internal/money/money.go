// Package money has the currency helpers shared by handlers and seed
// data. All amounts are shopspring decimals; formatting is fixed at
// two decimal places.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("negative amount")

// Format renders an amount as a display string, e.g. "$12.00".
// Negative amounts render as "-$1.50".
func Format(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// ParsePrice parses a non-negative price string ("12" or "12.50").
// Used for menu item prices; modifier deltas may be negative and are
// parsed with plain decimal.NewFromString.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, ErrNegativeAmount
	}
	return d, nil
}

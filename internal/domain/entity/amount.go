package entity

import "github.com/shopspring/decimal"

// MaxAmount is the largest amount a decimal(15,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// isStorableAmount reports whether amount is non-negative, has at most two
// fractional digits and fits the money columns without rounding.
func isStorableAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() &&
		amount.Equal(amount.Truncate(2)) &&
		amount.LessThanOrEqual(MaxAmount)
}

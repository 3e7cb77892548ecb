// Package valueobject contains value objects for the domain layer.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

const zeroAmount = "0.00"

var (
	billion = decimal.New(1, 9)
	million = decimal.New(1, 6)
)

// FormatSmart renders an amount for compact display. Values of a million or more
// are abbreviated to one decimal with a " mln" or " bln" suffix; smaller values
// use FormatFull. A null amount renders as "0.00".
func FormatSmart(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return zeroAmount
	}

	value := amount.Decimal
	abs := value.Abs()

	switch {
	case abs.GreaterThanOrEqual(billion):
		return value.Div(billion).StringFixed(1) + " bln"
	case abs.GreaterThanOrEqual(million):
		return value.Div(million).StringFixed(1) + " mln"
	default:
		return groupThousands(value.StringFixed(2))
	}
}

// FormatFull renders an amount with two decimals and space-grouped thousands,
// e.g. 1250000 becomes "1 250 000.00". A null amount renders as "0.00".
func FormatFull(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return zeroAmount
	}
	return groupThousands(amount.Decimal.StringFixed(2))
}

// FormatAmount is FormatSmart for a value that is always present.
func FormatAmount(amount decimal.Decimal) string {
	return FormatSmart(decimal.NewNullDecimal(amount))
}

// FormatAmountFull is FormatFull for a value that is always present.
func FormatAmountFull(amount decimal.Decimal) string {
	return FormatFull(decimal.NewNullDecimal(amount))
}

// groupThousands inserts a space every three digits of the integer part of a
// plain decimal string such as "-1234567.89".
func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	integer, fraction, hasFraction := strings.Cut(fixed, ".")

	var b strings.Builder
	b.Grow(len(fixed) + len(integer)/3 + 1)
	b.WriteString(sign)
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(digit)
	}
	if hasFraction {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String()
}

package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// String returns the amount with two fixed decimals and no grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as whole US dollars with en-US digit grouping.
func (m Money) Format() string {
	return FormatUSD(m.Decimal)
}

// MaxAmount bounds the absolute value of any amount or rate taken from user
// input.
var MaxAmount = decimal.New(1, 12)

// MaxInputScale is the most fractional digits accepted from user input.
const MaxInputScale = 20

// WithinLimits reports whether d is at most MaxAmount in absolute value and
// has at most MaxInputScale fractional digits. The exponent is checked before
// any comparison, so 1e300000000 is rejected without being expanded.
func WithinLimits(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -MaxInputScale || exp > 12 {
		return false
	}
	return d.Abs().LessThanOrEqual(MaxAmount)
}

// FormatUSD renders d as whole dollars, e.g. "$1,234,567" or "-$500".
// Amounts are rounded half away from zero before grouping.
func FormatUSD(d decimal.Decimal) string {
	return FormatUSDIn(language.AmericanEnglish, d)
}

// FormatUSDIn is FormatUSD with digit grouping taken from tag. The currency
// symbol stays "$" regardless of locale.
func FormatUSDIn(tag language.Tag, d decimal.Decimal) string {
	whole := d.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Neg()
	}
	p := message.NewPrinter(tag)
	return sign + "$" + p.Sprintf("%d", whole.IntPart())
}

// FormatPercent renders a percentage-point value with two decimals, e.g. "7.00%".
func FormatPercent(points decimal.Decimal) string {
	return points.StringFixed(2) + "%"
}

package output

import (
	"strconv"

	pkgdec "github.com/rpgo/fedcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole US dollars with en-US grouping.
func FormatCurrency(amount decimal.Decimal) string { return pkgdec.NewMoneyFromDecimal(amount).Format() }

// formatCents renders an amount with two fixed decimals for CSV cells.
func formatCents(amount decimal.Decimal) string { return pkgdec.NewMoneyFromDecimal(amount).String() }

// FormatPercentage formats percentage points with 2 decimals.
func FormatPercentage(points decimal.Decimal) string { return pkgdec.FormatPercent(points) }

// FormatMultiplier formats a fractional multiplier (0.011) as a percentage ("1.10%").
func FormatMultiplier(fraction decimal.Decimal) string {
	return pkgdec.FormatPercent(fraction.Shift(2))
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so every formatter renders money identically.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

// FormatMonths renders a nullable month count, with a dash for unreachable.
func FormatMonths(months *int) string {
	if months == nil {
		return "-"
	}
	if *months == 1 {
		return "1 month"
	}
	return strconv.Itoa(*months) + " months"
}

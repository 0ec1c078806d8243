package analyzer

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencySymbol prefixes every formatted amount. Display only; the
// analyzer does no currency conversion.
const currencySymbol = "₹"

// groupingPrinter renders comma-grouped integers for sub-lakh amounts.
var groupingPrinter = message.NewPrinter(language.English)

// formatCurrency renders an amount in Indian display convention:
// crores above 1,00,00,000, lakhs above 1,00,000, comma-grouped
// otherwise.
func formatCurrency(amount float64) string {
	switch {
	case amount >= 10_000_000:
		return fmt.Sprintf("%s%.2f Cr", currencySymbol, amount/10_000_000)
	case amount >= 100_000:
		return fmt.Sprintf("%s%.2f L", currencySymbol, amount/100_000)
	default:
		return groupingPrinter.Sprintf("%s%.0f", currencySymbol, amount)
	}
}

// formatPercent renders a fraction as a one-decimal percentage.
func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// formatMonths renders a month count to one decimal.
func formatMonths(months float64) string {
	return fmt.Sprintf("%.1f months", months)
}

// formatScore renders a 0-100 score as "NN.N/100".
func formatScore(score float64) string {
	return fmt.Sprintf("%.1f/100", score)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

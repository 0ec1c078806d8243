package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"crores", 12_500_000, "₹1.25 Cr"},
		{"crore boundary", 10_000_000, "₹1.00 Cr"},
		{"lakhs", 250_000, "₹2.50 L"},
		{"lakh boundary", 100_000, "₹1.00 L"},
		{"comma grouped", 5_000, "₹5,000"},
		{"small amount", 500, "₹500"},
		{"zero", 0, "₹0"},
		{"negative net worth", -250_000, "₹-250,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCurrency(tt.amount))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "16.7%", formatPercent(0.16667))
	assert.Equal(t, "0.0%", formatPercent(0))
	assert.Equal(t, "100.0%", formatPercent(1))
	assert.Equal(t, "60.0%", formatPercent(0.6))
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "6.7 months", formatMonths(6.6667))
	assert.Equal(t, "0.0 months", formatMonths(0))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "74.6/100", formatScore(74.625))
	assert.Equal(t, "0.0/100", formatScore(0))
	assert.Equal(t, "100.0/100", formatScore(100))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", yesNo(true))
	assert.Equal(t, "No", yesNo(false))
}

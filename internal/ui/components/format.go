package components

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are always grouped the English way, whatever the UI language.
var numbers = message.NewPrinter(language.English)

// FormatNumber groups thousands: 1234567 → "1,234,567".
func FormatNumber(n int) string {
	return numbers.Sprintf("%d", n)
}

func formatMoney(symbol string, v float64) string {
	cents := int64(math.Round(math.Abs(v) * 100))
	sign := ""
	if v < 0 && cents > 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, FormatNumber(int(cents/100)), cents%100)
}

// FormatUSD: 1234.5 → "$1,234.50".
func FormatUSD(v float64) string { return formatMoney("$", v) }

// FormatCNY: 1234.5 → "¥1,234.50".
func FormatCNY(v float64) string { return formatMoney("¥", v) }

// FormatAxis formats a chart axis value compactly: "$0.50", "$12", "$1.2K".
func FormatAxis(v float64) string {
	switch {
	case v >= 1000:
		return fmt.Sprintf("$%.1fK", v/1000)
	case v >= 10:
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

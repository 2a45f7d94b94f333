package ui

import (
	"fmt"
	"math"
	"strings"
)

// vendorPrefixes are stripped from service names in the order listed
var vendorPrefixes = []string{"Amazon ", "AWS ", "Amazon"}

const ellipsis = "…"

// TruncateServiceName drops the vendor prefix from a service name and cuts it
// to maxLen runes, marking the cut with an ellipsis. Every view that shows a
// service name goes through here so a service reads the same everywhere.
func TruncateServiceName(name string, maxLen int) string {
	short := name
	for _, prefix := range vendorPrefixes {
		for strings.HasPrefix(short, prefix) {
			short = strings.TrimPrefix(short, prefix)
		}
	}
	if short == "" {
		short = name
	}

	runes := []rune(short)
	if maxLen < 1 || len(runes) <= maxLen {
		return short
	}
	return string(runes[:maxLen-1]) + ellipsis
}

// ProportionBar draws a share as a fixed-width bar of filled and empty cells
func ProportionBar(percentage float64, width int) string {
	filled := int(math.Round(percentage / 100 * float64(width)))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatMoney renders a cost to two decimals
func FormatMoney(cost float64) string {
	return fmt.Sprintf("$%.2f", cost)
}

// FormatPercent renders a share to one decimal
func FormatPercent(percentage float64) string {
	return fmt.Sprintf("%.1f%%", percentage)
}

// FormatChange renders a month-over-month change. The first month has no
// predecessor and shows a dash.
func FormatChange(change float64, first bool) string {
	if first {
		return "—"
	}
	return fmt.Sprintf("%+.1f%%", change)
}

// ShortMonth turns "January 2025" into "Jan"
func ShortMonth(period string) string {
	month, _, _ := strings.Cut(period, " ")
	runes := []rune(month)
	if len(runes) > 3 {
		return string(runes[:3])
	}
	return month
}

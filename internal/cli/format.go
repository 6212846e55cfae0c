// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatMoney formats a USD amount with separators and no cents.
// e.g., 245000 -> "$245,000"
func FormatMoney(usd float64) string {
	if usd < 0 {
		return "-" + FormatMoney(-usd)
	}
	return "$" + FormatNumber(int64(math.Round(usd)))
}

// FormatPercent formats a value that is already a percentage.
// e.g., 67.8 -> "67.8%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDelta formats a change with an explicit sign.
// e.g., (-0.3, 1) -> "-0.3", (12, 0) -> "+12"
func FormatDelta(delta float64, decimals int) string {
	if delta >= 0 {
		return fmt.Sprintf("+%.*f", decimals, delta)
	}
	return fmt.Sprintf("%.*f", decimals, delta)
}

// FormatPoints formats a score contribution with sign and one decimal.
func FormatPoints(points float64) string {
	return FormatDelta(points, 1)
}

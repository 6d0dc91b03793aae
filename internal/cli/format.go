// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount, dropping cents once values reach
// four figures. e.g., 12.5 -> "$12.50", 1234.56 -> "$1,235"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	if v >= 1000 {
		return "$" + FormatNumber(int64(math.Round(v)))
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatMoneyDelta formats a signed dollar delta. e.g., -42 -> "-$42.00"
func FormatMoneyDelta(v float64) string {
	if v >= 0 {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats an already-scaled percentage value.
// e.g., 12.345 -> "12.3%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatPercentDelta formats a signed percentage delta.
func FormatPercentDelta(pct float64) string {
	if pct >= 0 {
		return "+" + FormatPercent(pct)
	}
	return FormatPercent(pct)
}

// FormatQty formats a headcount-style quantity (attendance, traffic).
func FormatQty(v float64) string {
	return FormatNumber(int64(math.Round(v)))
}

// FormatWeek renders a week index column value. e.g., 3 -> "W3"
func FormatWeek(week int) string {
	return "W" + strconv.Itoa(week)
}

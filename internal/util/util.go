package util

import (
	"fmt"
	"math"
	"strings"
)

// Round Method to round to 2 decimals
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

// Ellipsis truncates s to max characters including the "..." marker.
// Strings at or under the budget pass through unchanged.
func Ellipsis(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// FormatMoney renders f with two decimals and thousands separators, for
// narrative text. Cell values use a spreadsheet number format instead.
func FormatMoney(f float64) string {
	neg := f < 0
	if neg {
		f = -f
	}
	s := fmt.Sprintf("%.2f", f)
	parts := strings.SplitN(s, ".", 2)
	digits := parts[0]

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String() + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

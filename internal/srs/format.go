package srs

import (
	"fmt"
	"math"
)

// FormatInterval renders a day count as a coarse human-readable bucket:
// "< 1 day", "N days", then weeks, months, and years with nearest-integer
// rounding at each bucket boundary. Display only — scheduling decisions
// never use the formatted value.
func FormatInterval(days float64) string {
	switch {
	case days < 1:
		return "< 1 day"
	case days < 2:
		return "1 day"
	case days < 7:
		return fmt.Sprintf("%d days", int(math.Round(days)))
	case days < 30:
		return pluralize(int(math.Round(days/7)), "week")
	case days < 365:
		return pluralize(int(math.Round(days/30)), "month")
	default:
		return pluralize(int(math.Round(days/365)), "year")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

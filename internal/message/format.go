package message

import (
	"fmt"
	"time"
)

// FormatDate renders a schedule date the way storefront messages show it,
// e.g. "Jan 2".
func FormatDate(d time.Time) string {
	return d.Format("Jan 2")
}

// FormatWindow renders a delivery window. Coinciding ends collapse to a
// single date, a window inside one month renders compactly ("Jan 2-8" with
// an en dash), anything else spells out both ends ("Jan 30-Feb 3").
func FormatWindow(min, max time.Time) string {
	sameMonth := min.Year() == max.Year() && min.Month() == max.Month()
	if sameMonth && min.Day() == max.Day() {
		return FormatDate(min)
	}
	if sameMonth {
		return fmt.Sprintf("%s–%d", FormatDate(min), max.Day())
	}
	return FormatDate(min) + "–" + FormatDate(max)
}

// Countdown renders the time remaining until a cutoff. An elapsed cutoff
// renders as "0m"; callers refresh the schedule rather than show negative
// time.
func Countdown(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

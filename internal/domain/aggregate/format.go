package aggregate

import (
	"fmt"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// FormatDuration renders a minute count as "2h 5m", dropping the zero part.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 && mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatClockTime renders minutes since local midnight on a 12-hour clock.
// Zero is the "not recorded" sentinel, never a real midnight.
func FormatClockTime(minutesSinceMidnight int) string {
	if minutesSinceMidnight == 0 {
		return "Not set"
	}

	hours := minutesSinceMidnight / 60
	mins := minutesSinceMidnight % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	displayHours := hours % 12
	if displayHours == 0 {
		displayHours = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHours, mins, period)
}

// FormatCount renders a plain value with one decimal and its unit label.
func FormatCount(value float64, unit string) string {
	return fmt.Sprintf("%.1f %s", value, unit)
}

// FormatValue renders a value according to its category's kind.
func FormatValue(value float64, kind valueobject.ValueKind, unit string) string {
	switch kind {
	case valueobject.KindDuration:
		return FormatDuration(int(value))
	case valueobject.KindClockTime:
		return FormatClockTime(int(value))
	default:
		return FormatCount(value, unit)
	}
}

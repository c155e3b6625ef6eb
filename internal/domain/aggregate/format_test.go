package aggregate

import (
	"testing"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{125, "2h 5m"},
		{60, "1h"},
		{45, "45m"},
		{0, "0m"},
		{1440, "24h"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "Not set"},
		{540, "9:00 AM"},
		{780, "1:00 PM"},
		{720, "12:00 PM"},
		{5, "12:05 AM"}, // hour 0 displays as 12
		{1439, "11:59 PM"},
	}

	for _, tt := range tests {
		if got := FormatClockTime(tt.minutes); got != tt.want {
			t.Errorf("FormatClockTime(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(2.5, "cups"); got != "2.5 cups" {
		t.Errorf("FormatCount = %q, want %q", got, "2.5 cups")
	}
	if got := FormatCount(3, "times"); got != "3.0 times" {
		t.Errorf("FormatCount = %q, want %q", got, "3.0 times")
	}
}

func TestFormatValueDispatch(t *testing.T) {
	tests := []struct {
		kind valueobject.ValueKind
		val  float64
		unit string
		want string
	}{
		{valueobject.KindDuration, 125, "", "2h 5m"},
		{valueobject.KindClockTime, 540, "", "9:00 AM"},
		{valueobject.KindCount, 4, "pages", "4.0 pages"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.val, tt.kind, tt.unit); got != tt.want {
			t.Errorf("FormatValue(%v, %s) = %q, want %q", tt.val, tt.kind, got, tt.want)
		}
	}
}

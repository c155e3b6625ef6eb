package valueobject

import (
	"testing"
	"time"
)

func TestLocalDateRoundTrip(t *testing.T) {
	dates := []LocalDate{
		NewLocalDate(2024, time.January, 1),
		NewLocalDate(2024, time.February, 29),
		NewLocalDate(2024, time.December, 31),
		NewLocalDate(1999, time.September, 9),
	}

	for _, d := range dates {
		parsed, err := ParseLocalDate(d.String())
		if err != nil {
			t.Fatalf("ParseLocalDate(%q) returned error: %v", d.String(), err)
		}
		if !parsed.Equal(d) {
			t.Errorf("round trip of %v yielded %v", d, parsed)
		}
	}
}

func TestParseLocalDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "01/02/2024", "2024-05-32", "not-a-date"} {
		if _, err := ParseLocalDate(s); err == nil {
			t.Errorf("ParseLocalDate(%q) should fail", s)
		}
	}
}

func TestLocalDateOfUsesLocalCalendarDay(t *testing.T) {
	// 23:30 on May 1 in a UTC-10 zone is already May 2 in UTC; the local
	// calendar day must win or observations shift across midnight.
	loc := time.FixedZone("UTC-10", -10*3600)
	instant := time.Date(2024, time.May, 1, 23, 30, 0, 0, loc)

	d := LocalDateOf(instant)
	if d.String() != "2024-05-01" {
		t.Errorf("LocalDateOf local 23:30 = %s, want 2024-05-01", d)
	}
}

func TestLocalDateOfMonthBoundary(t *testing.T) {
	// Late evening on the last day of March in a UTC-5 zone is already
	// April in UTC. Calendar defaults (heat maps, snapshots) derive the
	// current month from the local date, so March must win here.
	loc := time.FixedZone("UTC-5", -5*3600)
	instant := time.Date(2025, time.March, 31, 23, 30, 0, 0, loc)

	d := LocalDateOf(instant)
	if d.Year != 2025 || d.Month != time.March || d.Day != 31 {
		t.Errorf("LocalDateOf = %s, want 2025-03-31", d)
	}
	if utc := instant.UTC(); utc.Month() != time.April {
		t.Fatalf("instant %v should cross into April in UTC", utc)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		start string
		days  int
		want  string
	}{
		{"2024-03-01", -1, "2024-02-29"}, // leap year
		{"2023-03-01", -1, "2023-02-28"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-05-15", 0, "2024-05-15"},
		{"2024-05-02", -365, "2023-05-03"},
	}

	for _, tt := range tests {
		start, err := ParseLocalDate(tt.start)
		if err != nil {
			t.Fatal(err)
		}
		if got := start.AddDays(tt.days).String(); got != tt.want {
			t.Errorf("%s + %d days = %s, want %s", tt.start, tt.days, got, tt.want)
		}
	}
}

func TestBeforeAfter(t *testing.T) {
	early := NewLocalDate(2024, time.April, 30)
	late := NewLocalDate(2024, time.May, 1)

	if !early.Before(late) || late.Before(early) {
		t.Error("Before ordering wrong across month boundary")
	}
	if !late.After(early) || early.After(late) {
		t.Error("After ordering wrong across month boundary")
	}
}

func TestPreviousMonth(t *testing.T) {
	year, month := PreviousMonth(2024, time.January)
	if year != 2023 || month != time.December {
		t.Errorf("PreviousMonth(2024, January) = %d, %v", year, month)
	}

	year, month = PreviousMonth(2024, time.July)
	if year != 2024 || month != time.June {
		t.Errorf("PreviousMonth(2024, July) = %d, %v", year, month)
	}
}

func TestTimeReturnsLocalMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	d := NewLocalDate(2024, time.May, 2)

	got := d.Time(loc)
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != loc {
		t.Errorf("Time() = %v, want local midnight in UTC+5", got)
	}
	if !LocalDateOf(got).Equal(d) {
		t.Errorf("LocalDateOf(d.Time(loc)) = %v, want %v", LocalDateOf(got), d)
	}
}

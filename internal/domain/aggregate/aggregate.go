// Package aggregate computes derived statistics over a category's dated
// observations: streaks, rolling averages, monthly totals and month-over-month
// comparisons. Every function is pure and takes its reference day explicitly,
// so results are deterministic and testable without touching the wall clock.
package aggregate

import (
	"fmt"
	"time"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// DefaultStreakLookback bounds how far back streak counting walks.
const DefaultStreakLookback = 365

// ObservationSet maps each recorded day to its value for one category.
// At most one value per day; absent days are simply missing keys.
type ObservationSet map[valueobject.LocalDate]float64

// Comparison relates one month's total to the preceding month's.
type Comparison struct {
	Difference    float64
	Percentage    float64
	IsImprovement bool
}

// Snapshot bundles the derived statistics the dashboard displays for a
// category. It is recomputed on demand and never persisted.
type Snapshot struct {
	CurrentStreak  int
	HasStreak      bool
	WeeklyAverage  float64
	MonthlyAverage float64
	MonthlyTotal   float64
	MonthOverMonth Comparison
}

// BuildSnapshot computes the full snapshot for the month containing today.
func BuildSnapshot(obs ObservationSet, policy valueobject.GoalPolicy, today valueobject.LocalDate) Snapshot {
	streak, hasStreak := CurrentStreak(obs, policy, today)
	weekly, _ := WindowAverage(obs, today, 7)
	return Snapshot{
		CurrentStreak:  streak,
		HasStreak:      hasStreak,
		WeeklyAverage:  weekly,
		MonthlyAverage: MonthlyAverage(obs, today.Year, today.Month),
		MonthlyTotal:   MonthlyTotal(obs, today.Year, today.Month),
		MonthOverMonth: MonthOverMonth(obs, policy, today.Year, today.Month),
	}
}

// CurrentStreak counts consecutive clean days ending at today, walking
// backward up to DefaultStreakLookback days. A day is clean when it has no
// observation or its value is zero; the walk stops at the first lapse.
// Streaks are only defined for abstinence policies: for any other policy the
// second return is false and the count is meaningless.
func CurrentStreak(obs ObservationSet, policy valueobject.GoalPolicy, today valueobject.LocalDate) (int, bool) {
	return CurrentStreakN(obs, policy, today, DefaultStreakLookback)
}

// CurrentStreakN is CurrentStreak with an explicit lookback bound.
func CurrentStreakN(obs ObservationSet, policy valueobject.GoalPolicy, today valueobject.LocalDate, lookback int) (int, bool) {
	if policy.Type() != valueobject.GoalAbstinence {
		return 0, false
	}

	streak := 0
	for i := 0; i < lookback; i++ {
		if v, ok := obs[today.AddDays(-i)]; ok && v > 0 {
			break
		}
		streak++
	}
	return streak, true
}

// WindowAverage averages the values recorded in the inclusive windowDays-day
// range ending at today. Days without an observation are excluded from both
// numerator and denominator; an empty window averages to zero.
func WindowAverage(obs ObservationSet, today valueobject.LocalDate, windowDays int) (float64, error) {
	if windowDays <= 0 {
		return 0, fmt.Errorf("window must be positive, got %d", windowDays)
	}

	var total float64
	days := 0
	for i := 0; i < windowDays; i++ {
		if v, ok := obs[today.AddDays(-i)]; ok {
			total += v
			days++
		}
	}
	if days == 0 {
		return 0, nil
	}
	return total / float64(days), nil
}

// MonthlyTotal sums all values recorded in the given calendar month.
func MonthlyTotal(obs ObservationSet, year int, month time.Month) float64 {
	var total float64
	for date, v := range obs {
		if date.InMonth(year, month) {
			total += v
		}
	}
	return total
}

// MonthlyAverage averages the values recorded in the given calendar month
// over the number of recorded days, zero when the month is empty.
func MonthlyAverage(obs ObservationSet, year int, month time.Month) float64 {
	var total float64
	days := 0
	for date, v := range obs {
		if date.InMonth(year, month) {
			total += v
			days++
		}
	}
	if days == 0 {
		return 0
	}
	return total / float64(days)
}

// MonthOverMonth compares the given month's total against the preceding
// calendar month. A zero prior total yields the zero Comparison rather than
// a division by zero: no baseline means no signal. Improvement means a
// decrease, and only for categories with a goal; directionless tracking
// never signals improvement.
func MonthOverMonth(obs ObservationSet, policy valueobject.GoalPolicy, year int, month time.Month) Comparison {
	prevYear, prevMonth := valueobject.PreviousMonth(year, month)
	priorTotal := MonthlyTotal(obs, prevYear, prevMonth)
	if priorTotal == 0 {
		return Comparison{}
	}

	difference := MonthlyTotal(obs, year, month) - priorTotal
	return Comparison{
		Difference:    difference,
		Percentage:    difference / abs(priorTotal) * 100,
		IsImprovement: policy.Type() != valueobject.GoalNone && difference < 0,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package aggregate

import (
	"math"
	"testing"
	"time"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

func date(t *testing.T, s string) valueobject.LocalDate {
	t.Helper()
	d, err := valueobject.ParseLocalDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func obsSet(t *testing.T, values map[string]float64) ObservationSet {
	t.Helper()
	obs := make(ObservationSet, len(values))
	for s, v := range values {
		obs[date(t, s)] = v
	}
	return obs
}

func TestCurrentStreakOnlyForAbstinence(t *testing.T) {
	limit, _ := valueobject.NewLimitPolicy(5)
	today := date(t, "2024-05-02")

	for _, policy := range []valueobject.GoalPolicy{valueobject.NonePolicy(), limit} {
		if _, ok := CurrentStreak(ObservationSet{}, policy, today); ok {
			t.Errorf("streak should be undefined for %s policy", policy.Type())
		}
	}
}

func TestCurrentStreakCountsCleanDays(t *testing.T) {
	// May 2 has no observation, May 1 is an explicit zero; both count as
	// clean. May 3 is after today and out of the backward walk entirely.
	obs := obsSet(t, map[string]float64{
		"2024-05-01": 0,
		"2024-05-03": 3,
	})

	streak, ok := CurrentStreak(obs, valueobject.AbstinencePolicy(), date(t, "2024-05-02"))
	if !ok {
		t.Fatal("streak should be defined for abstinence policy")
	}
	if streak != DefaultStreakLookback {
		// Everything before May 1 is also clean, so the walk runs to the cap.
		t.Errorf("streak = %d, want cap %d", streak, DefaultStreakLookback)
	}
}

func TestCurrentStreakStopsAtLapse(t *testing.T) {
	obs := obsSet(t, map[string]float64{
		"2024-04-30": 2,
		"2024-05-01": 0,
	})

	streak, _ := CurrentStreak(obs, valueobject.AbstinencePolicy(), date(t, "2024-05-02"))
	if streak != 2 {
		t.Errorf("streak = %d, want 2 (May 2 absent + May 1 zero)", streak)
	}
}

func TestCurrentStreakBrokenToday(t *testing.T) {
	obs := obsSet(t, map[string]float64{"2024-05-02": 1})

	streak, _ := CurrentStreak(obs, valueobject.AbstinencePolicy(), date(t, "2024-05-02"))
	if streak != 0 {
		t.Errorf("streak = %d, want 0 when today has a lapse", streak)
	}
}

func TestCurrentStreakRespectsLookbackBound(t *testing.T) {
	streak, _ := CurrentStreakN(ObservationSet{}, valueobject.AbstinencePolicy(), date(t, "2024-05-02"), 30)
	if streak != 30 {
		t.Errorf("streak = %d, want lookback bound 30", streak)
	}
}

func TestWindowAverageExcludesAbsentDays(t *testing.T) {
	// 7-day window with only two recorded days averages those two values.
	obs := obsSet(t, map[string]float64{
		"2024-05-01": 4,
		"2024-04-28": 2,
		"2024-04-20": 100, // outside the window
	})

	avg, err := WindowAverage(obs, date(t, "2024-05-02"), 7)
	if err != nil {
		t.Fatal(err)
	}
	if avg != 3 {
		t.Errorf("windowAverage = %v, want 3", avg)
	}
}

func TestWindowAverageEmptyWindow(t *testing.T) {
	avg, err := WindowAverage(ObservationSet{}, date(t, "2024-05-02"), 7)
	if err != nil {
		t.Fatal(err)
	}
	if avg != 0 {
		t.Errorf("windowAverage of empty set = %v, want 0", avg)
	}
}

func TestWindowAverageRejectsNonPositiveWindow(t *testing.T) {
	for _, window := range []int{0, -7} {
		if _, err := WindowAverage(ObservationSet{}, date(t, "2024-05-02"), window); err == nil {
			t.Errorf("WindowAverage with window %d should fail", window)
		}
	}
}

func TestMonthlyTotalAndAverage(t *testing.T) {
	obs := obsSet(t, map[string]float64{
		"2024-05-01": 10,
		"2024-05-20": 30,
		"2024-04-30": 99, // prior month
	})

	if total := MonthlyTotal(obs, 2024, time.May); total != 40 {
		t.Errorf("monthlyTotal = %v, want 40", total)
	}
	if avg := MonthlyAverage(obs, 2024, time.May); avg != 20 {
		t.Errorf("monthlyAverage = %v, want 20", avg)
	}
	if avg := MonthlyAverage(obs, 2024, time.June); avg != 0 {
		t.Errorf("monthlyAverage of empty month = %v, want 0", avg)
	}
}

func TestMonthOverMonthZeroPriorIsNoSignal(t *testing.T) {
	obs := obsSet(t, map[string]float64{"2024-05-10": 50})

	got := MonthOverMonth(obs, valueobject.AbstinencePolicy(), 2024, time.May)
	if got != (Comparison{}) {
		t.Errorf("monthOverMonth with zero prior = %+v, want zero comparison", got)
	}
}

func TestMonthOverMonthAcrossYearBoundary(t *testing.T) {
	// January 100 vs prior December 50; no goal means improvement is never
	// signaled even though the total doubled.
	obs := obsSet(t, map[string]float64{
		"2024-01-15": 100,
		"2023-12-15": 50,
	})

	got := MonthOverMonth(obs, valueobject.NonePolicy(), 2024, time.January)
	if got.Difference != 50 {
		t.Errorf("difference = %v, want 50", got.Difference)
	}
	if got.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", got.Percentage)
	}
	if got.IsImprovement {
		t.Error("isImprovement should be false for a none policy")
	}
}

func TestMonthOverMonthImprovementNeedsGoalAndDecrease(t *testing.T) {
	obs := obsSet(t, map[string]float64{
		"2024-05-10": 20,
		"2024-04-10": 50,
	})

	got := MonthOverMonth(obs, valueobject.AbstinencePolicy(), 2024, time.May)
	if !got.IsImprovement {
		t.Error("a decrease under an abstinence goal should be an improvement")
	}
	if got.Difference != -30 {
		t.Errorf("difference = %v, want -30", got.Difference)
	}
	if math.Abs(got.Percentage-(-60)) > 1e-9 {
		t.Errorf("percentage = %v, want -60", got.Percentage)
	}
}

func TestBuildSnapshot(t *testing.T) {
	obs := obsSet(t, map[string]float64{
		"2024-05-01": 4,
		"2024-05-02": 0,
		"2024-04-28": 2,
		"2024-04-10": 10,
	})

	snap := BuildSnapshot(obs, valueobject.AbstinencePolicy(), date(t, "2024-05-02"))

	if !snap.HasStreak {
		t.Fatal("snapshot should carry a streak for an abstinence category")
	}
	if snap.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 (today clean, yesterday lapsed)", snap.CurrentStreak)
	}
	if snap.MonthlyTotal != 4 {
		t.Errorf("monthlyTotal = %v, want 4", snap.MonthlyTotal)
	}
	if snap.WeeklyAverage != 2 {
		t.Errorf("weeklyAverage = %v, want 2 over the three recorded days", snap.WeeklyAverage)
	}
	if snap.MonthOverMonth.Difference != -8 {
		t.Errorf("monthOverMonth difference = %v, want -8", snap.MonthOverMonth.Difference)
	}
	if !snap.MonthOverMonth.IsImprovement {
		t.Error("a drop from 12 to 4 under abstinence should be an improvement")
	}
}

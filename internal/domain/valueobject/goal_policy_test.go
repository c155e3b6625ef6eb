package valueobject

import (
	"errors"
	"math"
	"testing"
)

func TestNewLimitPolicyRejectsNonPositiveThreshold(t *testing.T) {
	for _, threshold := range []float64{0, -1, -0.5} {
		if _, err := NewLimitPolicy(threshold); !errors.Is(err, ErrNonPositiveLimit) {
			t.Errorf("NewLimitPolicy(%v) error = %v, want ErrNonPositiveLimit", threshold, err)
		}
	}

	if _, err := NewLimitPolicy(5); err != nil {
		t.Fatalf("NewLimitPolicy(5) returned error: %v", err)
	}
}

func TestNewGoalPolicy(t *testing.T) {
	tests := []struct {
		name     string
		goalType GoalType
		value    float64
		wantErr  bool
	}{
		{"none ignores value", GoalNone, 0, false},
		{"abstinence ignores value", GoalAbstinence, 0, false},
		{"limit with positive value", GoalLimit, 3, false},
		{"limit with zero value", GoalLimit, 0, true},
		{"unknown type", GoalType("weekly"), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGoalPolicy(tt.goalType, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewGoalPolicy(%q, %v) error = %v, wantErr %v", tt.goalType, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestIsCompliant(t *testing.T) {
	limit, _ := NewLimitPolicy(5)

	tests := []struct {
		name   string
		policy GoalPolicy
		value  float64
		want   bool
	}{
		{"none always compliant", NonePolicy(), 1000, true},
		{"limit under threshold", limit, 4, true},
		{"limit at threshold", limit, 5, true},
		{"limit over threshold", limit, 7, false},
		{"abstinence zero", AbstinencePolicy(), 0, true},
		{"abstinence nonzero", AbstinencePolicy(), 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.IsCompliant(tt.value); got != tt.want {
				t.Errorf("IsCompliant(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestHeatIntensity(t *testing.T) {
	limit, _ := NewLimitPolicy(5)

	tests := []struct {
		name   string
		policy GoalPolicy
		value  float64
		kind   ValueKind
		want   float64
	}{
		{"zero value always cold", AbstinencePolicy(), 0, KindCount, 0},
		{"abstinence lapse saturates", AbstinencePolicy(), 1, KindCount, 1},
		{"limit ratio", limit, 2.5, KindCount, 0.5},
		{"limit saturates above threshold", limit, 7, KindCount, 1},
		{"no goal count uses ceiling 20", NonePolicy(), 10, KindCount, 0.5},
		{"no goal duration uses ceiling 240", NonePolicy(), 120, KindDuration, 0.5},
		{"no goal saturates at ceiling", NonePolicy(), 500, KindDuration, 1},
		{"clock time early morning is hot", NonePolicy(), 60, KindClockTime, 1.0 - (60.0/720)*0.7},
		{"clock time noon", NonePolicy(), 720, KindClockTime, 0.3},
		{"clock time evening decays", NonePolicy(), 1080, KindClockTime, 0.15},
		{"clock time near midnight is cold", NonePolicy(), 1440, KindClockTime, 0},
		{"clock time overrides abstinence policy", AbstinencePolicy(), 720, KindClockTime, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.HeatIntensity(tt.value, tt.kind)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HeatIntensity(%v, %s) = %v, want %v", tt.value, tt.kind, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("HeatIntensity(%v, %s) = %v, outside [0,1]", tt.value, tt.kind, got)
			}
		})
	}
}

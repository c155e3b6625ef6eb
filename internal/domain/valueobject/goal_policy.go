// Package valueobject defines immutable domain value types.
package valueobject

import (
	"errors"
	"fmt"
)

// GoalType classifies the compliance rule attached to a category.
type GoalType string

const (
	// GoalNone tracks a metric without any target.
	GoalNone GoalType = "none"
	// GoalLimit tracks a metric against a daily upper bound.
	GoalLimit GoalType = "limit"
	// GoalAbstinence tracks a metric where any nonzero value is a lapse.
	GoalAbstinence GoalType = "abstinence"
)

// ValueKind classifies what a category's numeric values mean.
type ValueKind string

const (
	// KindCount is a plain count of occurrences.
	KindCount ValueKind = "count"
	// KindDuration is a number of minutes spent.
	KindDuration ValueKind = "duration"
	// KindClockTime is minutes since local midnight; zero means "not recorded".
	KindClockTime ValueKind = "time"
)

// Visualization ceilings for categories without a goal. Values at or above
// the ceiling render at full intensity.
const (
	durationIntensityCeiling = 240 // minutes
	countIntensityCeiling    = 20
)

const minutesToNoon = 720

// ErrNonPositiveLimit is returned when a limit policy is constructed with a
// threshold that is zero or negative.
var ErrNonPositiveLimit = errors.New("limit threshold must be positive")

// GoalPolicy is the compliance rule for a category: no goal, a daily upper
// limit, or zero tolerance. The threshold is meaningful only for GoalLimit.
type GoalPolicy struct {
	kind      GoalType
	threshold float64
}

// NonePolicy returns the policy for directionless tracking.
func NonePolicy() GoalPolicy {
	return GoalPolicy{kind: GoalNone}
}

// AbstinencePolicy returns the zero-tolerance policy.
func AbstinencePolicy() GoalPolicy {
	return GoalPolicy{kind: GoalAbstinence}
}

// NewLimitPolicy returns an upper-limit policy. The threshold must be
// positive; this is validated at construction, never at evaluation time.
func NewLimitPolicy(threshold float64) (GoalPolicy, error) {
	if threshold <= 0 {
		return GoalPolicy{}, ErrNonPositiveLimit
	}
	return GoalPolicy{kind: GoalLimit, threshold: threshold}, nil
}

// NewGoalPolicy builds a policy from its stored representation.
func NewGoalPolicy(goalType GoalType, goalValue float64) (GoalPolicy, error) {
	switch goalType {
	case GoalNone:
		return NonePolicy(), nil
	case GoalAbstinence:
		return AbstinencePolicy(), nil
	case GoalLimit:
		return NewLimitPolicy(goalValue)
	default:
		return GoalPolicy{}, fmt.Errorf("unknown goal type %q", goalType)
	}
}

// Type returns the policy's goal type.
func (p GoalPolicy) Type() GoalType {
	return p.kind
}

// Threshold returns the daily limit; zero for non-limit policies.
func (p GoalPolicy) Threshold() float64 {
	return p.threshold
}

// IsCompliant reports whether a day's value satisfies the policy.
func (p GoalPolicy) IsCompliant(value float64) bool {
	switch p.kind {
	case GoalAbstinence:
		return value == 0
	case GoalLimit:
		return value <= p.threshold
	default:
		return true
	}
}

// HeatIntensity scores a day's value in [0,1] for calendar heat maps.
// Higher means further from ideal. Clock-time values invert the scale:
// earlier times score hotter, since later is better for e.g. first-use times.
func (p GoalPolicy) HeatIntensity(value float64, kind ValueKind) float64 {
	if value == 0 {
		return 0
	}

	if kind == KindClockTime {
		if value <= minutesToNoon {
			// Morning: 1.0 at midnight decaying to 0.3 at noon.
			return 1.0 - (value/minutesToNoon)*0.7
		}
		// Afternoon and evening: 0.3 at noon decaying to 0 at midnight.
		return max(0, 0.3-((value-minutesToNoon)/minutesToNoon)*0.3)
	}

	switch p.kind {
	case GoalAbstinence:
		return 1
	case GoalLimit:
		return min(value/p.threshold, 1)
	default:
		ceiling := float64(countIntensityCeiling)
		if kind == KindDuration {
			ceiling = durationIntensityCeiling
		}
		return min(value/ceiling, 1)
	}
}

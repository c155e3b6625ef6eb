// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/lifetrack/backend/internal/application/usecase/insights"
)

// ComparisonResponse represents a month-over-month comparison in API responses.
type ComparisonResponse struct {
	Difference    float64 `json:"difference"`
	Percentage    float64 `json:"percentage"`
	IsImprovement bool    `json:"is_improvement"`
	Display       string  `json:"display"`
}

// SnapshotResponse represents the derived statistics for one category.
type SnapshotResponse struct {
	Category              CategoryResponse   `json:"category"`
	CurrentStreak         int                `json:"current_streak"`
	HasStreak             bool               `json:"has_streak"`
	WeeklyAverage         float64            `json:"weekly_average"`
	WeeklyAverageDisplay  string             `json:"weekly_average_display"`
	MonthlyAverage        float64            `json:"monthly_average"`
	MonthlyAverageDisplay string             `json:"monthly_average_display"`
	MonthlyTotal          float64            `json:"monthly_total"`
	MonthlyTotalDisplay   string             `json:"monthly_total_display"`
	MonthOverMonth        ComparisonResponse `json:"month_over_month"`
	TodayCompliant        bool               `json:"today_compliant"`
}

// HeatmapDayResponse represents one day's cell in a heat-map month.
type HeatmapDayResponse struct {
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
	Display   string  `json:"display"`
	Intensity float64 `json:"intensity"`
	Compliant bool    `json:"compliant"`
	Recorded  bool    `json:"recorded"`
}

// HeatmapResponse represents the response for a heat-map month.
type HeatmapResponse struct {
	Days []HeatmapDayResponse `json:"days"`
}

// ToSnapshotResponse converts a snapshot use case output to a SnapshotResponse DTO.
func ToSnapshotResponse(output *insights.GetSnapshotOutput) SnapshotResponse {
	snap := output.Snapshot
	return SnapshotResponse{
		Category:              ToCategoryResponse(output.Category),
		CurrentStreak:         snap.CurrentStreak,
		HasStreak:             snap.HasStreak,
		WeeklyAverage:         snap.WeeklyAverage,
		WeeklyAverageDisplay:  output.WeeklyAverageDisplay,
		MonthlyAverage:        snap.MonthlyAverage,
		MonthlyAverageDisplay: output.MonthlyAverageDisplay,
		MonthlyTotal:          snap.MonthlyTotal,
		MonthlyTotalDisplay:   output.MonthlyTotalDisplay,
		MonthOverMonth: ComparisonResponse{
			Difference:    snap.MonthOverMonth.Difference,
			Percentage:    snap.MonthOverMonth.Percentage,
			IsImprovement: snap.MonthOverMonth.IsImprovement,
			Display:       output.MonthOverMonthDisplay,
		},
		TodayCompliant: output.TodayCompliant,
	}
}

// ToHeatmapResponse converts a heat-map use case output to a HeatmapResponse DTO.
func ToHeatmapResponse(output *insights.GetHeatmapOutput) HeatmapResponse {
	days := make([]HeatmapDayResponse, len(output.Days))
	for i, day := range output.Days {
		days[i] = HeatmapDayResponse{
			Date:      day.Date.String(),
			Value:     day.Value,
			Display:   day.Display,
			Intensity: day.Intensity,
			Compliant: day.Compliant,
			Recorded:  day.Recorded,
		}
	}
	return HeatmapResponse{
		Days: days,
	}
}

package get_monthly_stats

import (
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/get_home_summary"
)

// MonthlyStatsResponse HTTP response model
type MonthlyStatsResponse struct {
	Current            domain.MonthlyStats `json:"current"`
	Previous           domain.MonthlyStats `json:"previous"`
	OccupancyRateDelta float64             `json:"occupancyRateDelta"`
	UsedCountDelta     int                 `json:"usedCountDelta"`
}

func FromUseCase(resp *get_home_summary.MonthlyComparisonResponse) *MonthlyStatsResponse {
	return &MonthlyStatsResponse{
		Current:            resp.Current,
		Previous:           resp.Previous,
		OccupancyRateDelta: resp.OccupancyRateDelta,
		UsedCountDelta:     resp.UsedCountDelta,
	}
}

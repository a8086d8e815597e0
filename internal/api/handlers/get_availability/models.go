package get_availability

import (
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/get_home_summary"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CheckIn           domain.Date          `json:"checkIn"`
	CheckOut          domain.Date          `json:"checkOut"`
	Days              int                  `json:"days"`
	AvailableRooms    int                  `json:"availableRooms"`
	AvailableCapacity int                  `json:"availableCapacity"`
	OccupancyRate     float64              `json:"occupancyRate"`
	TotalCapacity     int                  `json:"totalCapacity"`
	Details           []domain.RoomVacancy `json:"details"`
}

func FromUseCase(resp *get_home_summary.AvailabilityResponse) *AvailabilityResponse {
	details := resp.Stats.Details
	if details == nil {
		details = []domain.RoomVacancy{}
	}
	return &AvailabilityResponse{
		CheckIn:           resp.Period.CheckIn,
		CheckOut:          resp.Period.CheckOut,
		Days:              resp.Days,
		AvailableRooms:    resp.Stats.AvailableRooms,
		AvailableCapacity: resp.Stats.AvailableCapacity,
		OccupancyRate:     resp.Stats.OccupancyRate,
		TotalCapacity:     resp.TotalCapacity,
		Details:           details,
	}
}

package get_availability

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/get_home_summary"
)

type SummaryUseCase interface {
	Availability(ctx context.Context, checkIn, checkOut string) (*get_home_summary.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

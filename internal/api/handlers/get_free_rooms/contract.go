package get_free_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

type DashboardService interface {
	FreeRooms(ctx context.Context, checkIn, checkOut string) ([]domain.RoomVacancy, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

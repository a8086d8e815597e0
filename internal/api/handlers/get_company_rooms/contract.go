package get_company_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/service/shaxmatka"
)

type DashboardService interface {
	CompanyRooms(ctx context.Context, checkIn, checkOut string) ([]shaxmatka.CompanyRooms, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

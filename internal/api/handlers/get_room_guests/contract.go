package get_room_guests

import (
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

type DashboardService interface {
	Room(number string) (domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

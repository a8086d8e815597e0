package refresh_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

type DashboardService interface {
	Refresh(ctx context.Context) error
	Rooms() []domain.Room
	LastRefreshed() (time.Time, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

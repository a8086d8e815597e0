package shaxmatka_page

import (
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/shaxmatka"
)

type DashboardService interface {
	Grid(start domain.Date, days int) (*shaxmatka.Grid, error)
	LastRefreshed() (time.Time, bool)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

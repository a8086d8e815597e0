package export_grid

import (
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/shaxmatka"
)

type DashboardService interface {
	Grid(start domain.Date, days int) (*shaxmatka.Grid, error)
}

// Exporter превращает шахматку в файл
type Exporter func(grid *shaxmatka.Grid) ([]byte, error)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

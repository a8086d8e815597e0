package get_home_summary

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// HotelBackend интерфейс клиента бэкенда гостиницы
type HotelBackend interface {
	AvailabilityStats(ctx context.Context, period domain.DateRange) (*domain.AvailabilityStats, error)
	MonthlyStats(ctx context.Context, year, month int) (*domain.MonthlyStats, error)
}

// CapacitySource суммарная вместимость загруженных номеров
type CapacitySource interface {
	TotalCapacity() int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

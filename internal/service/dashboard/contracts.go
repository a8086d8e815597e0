package dashboard

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// HotelBackend интерфейс клиента бэкенда гостиницы
type HotelBackend interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	FreeRooms(ctx context.Context, period domain.DateRange) ([]domain.RoomVacancy, error)
	BookedRooms(ctx context.Context, period domain.DateRange) ([]domain.Room, error)
}

// Metrics учет обновлений списка номеров
type Metrics interface {
	ObserveRefresh(outcome string, roomsLoaded int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) ObserveRefresh(string, int) {}

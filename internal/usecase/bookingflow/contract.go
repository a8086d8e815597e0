package bookingflow

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// BackendCall мутация в бэкенде гостиницы (регистрация или отмена)
type BackendCall func(ctx context.Context, req domain.BookingRequest) (string, error)

// Journal интерфейс журнала мутаций
type Journal interface {
	Record(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
}

// RoomsRefresher перезагружает список номеров после успешной мутации
type RoomsRefresher interface {
	Refresh(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

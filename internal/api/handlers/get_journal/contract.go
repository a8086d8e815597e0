package get_journal

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

type JournalRepository interface {
	List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

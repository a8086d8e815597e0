package get_monthly_stats

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/get_home_summary"
)

type SummaryUseCase interface {
	MonthlyComparison(ctx context.Context, year, month int) (*get_home_summary.MonthlyComparisonResponse, error)
}

// Clock источник сегодняшней даты для месяца по умолчанию
type Clock interface {
	Today() domain.Date
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

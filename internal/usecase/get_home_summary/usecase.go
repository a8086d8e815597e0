package get_home_summary

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// UseCase use case для сводки на главной странице
type UseCase struct {
	backend  HotelBackend
	capacity CapacitySource
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backend HotelBackend, capacity CapacitySource, logger Logger) *UseCase {
	return &UseCase{
		backend:  backend,
		capacity: capacity,
		logger:   logger,
	}
}

// Availability свободные места за период. Период проверяется до обращения к бэкенду.
func (uc *UseCase) Availability(ctx context.Context, checkIn, checkOut string) (*AvailabilityResponse, error) {
	period, err := domain.ParseDateRange(checkIn, checkOut)
	if err != nil {
		uc.logger.Warn("Availability: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	stats, err := uc.backend.AvailabilityStats(ctx, period)
	if err != nil {
		uc.logger.Error("Availability: %s..%s failed: %v", period.CheckIn, period.CheckOut, err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return &AvailabilityResponse{
		Period:        period,
		Days:          period.Days(),
		Stats:         *stats,
		TotalCapacity: uc.capacity.TotalCapacity(),
	}, nil
}

// MonthlyComparison загрузка за месяц и за предыдущий месяц, запросы идут параллельно
func (uc *UseCase) MonthlyComparison(ctx context.Context, year, month int) (*MonthlyComparisonResponse, error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive, got %d", ErrInvalidInput, year)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be in 1..12, got %d", ErrInvalidInput, month)
	}

	prevYear, prevMonth := previousMonth(year, month)
	if prevYear <= 0 {
		return nil, fmt.Errorf("%w: no month before %04d-%02d", ErrInvalidInput, year, month)
	}

	var current, previous *domain.MonthlyStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = uc.backend.MonthlyStats(gctx, year, month)
		return err
	})
	g.Go(func() (err error) {
		previous, err = uc.backend.MonthlyStats(gctx, prevYear, prevMonth)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("MonthlyComparison: %04d-%02d failed: %v", year, month, err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return &MonthlyComparisonResponse{
		Current:            *current,
		Previous:           *previous,
		OccupancyRateDelta: current.OccupancyRate - previous.OccupancyRate,
		UsedCountDelta:     current.UsedCount - previous.UsedCount,
	}, nil
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

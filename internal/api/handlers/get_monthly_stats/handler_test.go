package get_monthly_stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/integrations/hotelbackend"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/get_home_summary"
	"github.com/m04kA/SMC-HotelDashboard/pkg/logger"
)

type useCaseStub struct {
	year, month int
	err         error
}

func (u *useCaseStub) MonthlyComparison(_ context.Context, year, month int) (*get_home_summary.MonthlyComparisonResponse, error) {
	u.year, u.month = year, month
	if u.err != nil {
		return nil, u.err
	}
	return &get_home_summary.MonthlyComparisonResponse{
		Current:            domain.MonthlyStats{Year: year, Month: month, UsedCount: 30, OccupancyRate: 60},
		Previous:           domain.MonthlyStats{Year: year, Month: month - 1, UsedCount: 20, OccupancyRate: 40},
		OccupancyRateDelta: 20,
		UsedCountDelta:     10,
	}, nil
}

type clockStub struct{}

func (clockStub) Today() domain.Date { return domain.NewDate(2024, time.March, 15) }

func TestHandle_DefaultsToCurrentMonth(t *testing.T) {
	uc := &useCaseStub{}
	rec := httptest.NewRecorder()
	NewHandler(uc, clockStub{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/monthly", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2024, uc.year)
	assert.Equal(t, 3, uc.month)

	var resp MonthlyStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 20.0, resp.OccupancyRateDelta)
	assert.Equal(t, 10, resp.UsedCountDelta)
}

func TestHandle_ExplicitMonth(t *testing.T) {
	uc := &useCaseStub{}
	rec := httptest.NewRecorder()
	NewHandler(uc, clockStub{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/monthly?year=2023&month=12", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2023, uc.year)
	assert.Equal(t, 12, uc.month)
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&useCaseStub{}, clockStub{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/monthly?month=may", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	uc := &useCaseStub{err: fmt.Errorf("%w: month must be in 1..12", get_home_summary.ErrInvalidInput)}
	NewHandler(uc, clockStub{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/monthly?month=13", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	uc = &useCaseStub{err: fmt.Errorf("%w: %w", get_home_summary.ErrBackend, hotelbackend.ErrNoResponse)}
	NewHandler(uc, clockStub{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/monthly", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

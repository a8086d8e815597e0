package get_free_rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/integrations/hotelbackend"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/dashboard"
	"github.com/m04kA/SMC-HotelDashboard/pkg/logger"
)

type serviceStub struct {
	checkIn, checkOut string
	rooms             []domain.RoomVacancy
	err               error
}

func (s *serviceStub) FreeRooms(_ context.Context, checkIn, checkOut string) ([]domain.RoomVacancy, error) {
	s.checkIn, s.checkOut = checkIn, checkOut
	return s.rooms, s.err
}

func TestHandle(t *testing.T) {
	svc := &serviceStub{rooms: []domain.RoomVacancy{
		{Number: "2", Free: 1, Capacity: 2},
		{Number: "10", Free: 3, Capacity: 3},
	}}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/free?checkIn=2024-03-01&checkOut=2024-03-05", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-03-01", svc.checkIn)
	assert.Equal(t, "2024-03-05", svc.checkOut)

	var resp FreeRoomsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.TotalFree)
	assert.Len(t, resp.Rooms, 2)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "missing dates",
			err:     fmt.Errorf("%w: %w", dashboard.ErrInvalidInput, domain.ErrMissingDateRange),
			status:  http.StatusBadRequest,
			message: handlers.MsgSelectDates,
		},
		{
			name:    "reversed dates",
			err:     fmt.Errorf("%w: %w", dashboard.ErrInvalidInput, domain.ErrInvalidDateRange),
			status:  http.StatusBadRequest,
			message: handlers.MsgDatesReversed,
		},
		{
			name:    "no response",
			err:     fmt.Errorf("%w: %w", dashboard.ErrBackend, hotelbackend.ErrNoResponse),
			status:  http.StatusServiceUnavailable,
			message: handlers.MsgNoResponse,
		},
		{
			name:    "server error",
			err:     fmt.Errorf("%w: %w", dashboard.ErrBackend, &hotelbackend.ServerError{StatusCode: 500, Message: "db down"}),
			status:  http.StatusBadGateway,
			message: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&serviceStub{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/free", nil))

			assert.Equal(t, tt.status, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

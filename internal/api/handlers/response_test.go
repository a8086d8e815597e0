package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/integrations/hotelbackend"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespondBackendError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "server message verbatim",
			err:     fmt.Errorf("wrapped: %w", &hotelbackend.ServerError{StatusCode: 409, Message: "Xonada joy yo‘q"}),
			status:  http.StatusBadGateway,
			message: "Xonada joy yo‘q",
		},
		{
			name:    "no response",
			err:     fmt.Errorf("%w: dial tcp", hotelbackend.ErrNoResponse),
			status:  http.StatusServiceUnavailable,
			message: MsgNoResponse,
		},
		{
			name:    "invalid response",
			err:     fmt.Errorf("%w: unexpected token", hotelbackend.ErrInvalidResponse),
			status:  http.StatusInternalServerError,
			message: MsgInternalError,
		},
		{
			name:    "request setup",
			err:     hotelbackend.ErrRequestSetup,
			status:  http.StatusInternalServerError,
			message: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			status := RespondBackendError(rec, tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.status, resp.Code)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/grid?days=7&bad=x", nil)

	v, err := QueryInt(req, "days", 31)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = QueryInt(req, "missing", 31)
	require.NoError(t, err)
	assert.Equal(t, 31, v)

	_, err = QueryInt(req, "bad", 31)
	assert.Error(t, err)
}

func TestDateRangeMessage(t *testing.T) {
	_, err := domain.ParseDateRange("", "2024-03-01")
	assert.Equal(t, MsgSelectDates, DateRangeMessage(err))

	_, err = domain.ParseDateRange("2024-03-05", "2024-03-01")
	assert.Equal(t, MsgDatesReversed, DateRangeMessage(err))

	_, err = domain.ParseDateRange("05.03.2024", "2024-03-01")
	assert.Equal(t, MsgInvalidDate, DateRangeMessage(err))
}

package health

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type serviceStub struct {
	refreshed time.Time
}

func (s serviceStub) LastRefreshed() (time.Time, bool) {
	return s.refreshed, !s.refreshed.IsZero()
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(serviceStub{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","roomsLoaded":false}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(serviceStub{refreshed: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.JSONEq(t, `{"status":"ok","roomsLoaded":true,"refreshedAt":"2024-03-01T00:00:00Z"}`, rec.Body.String())
}

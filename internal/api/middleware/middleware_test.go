package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelDashboard/pkg/requestid"
)

type observed struct {
	method string
	route  string
	status int
}

type metricsStub struct {
	calls []observed
}

func (m *metricsStub) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.calls = append(m.calls, observed{method: method, route: route, status: status})
}

type logStub struct {
	lines []string
}

func (l *logStub) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &metricsStub{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/rooms/{number}/guests", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/rooms/12/guests", "/rooms/7/guests"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []observed{
		{method: http.MethodGet, route: "/rooms/{number}/guests", status: http.StatusNotFound},
		{method: http.MethodGet, route: "/rooms/{number}/guests", status: http.StatusNotFound},
	}, m.calls)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(requestid.Header))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(requestid.Header))
}

func TestLogging(t *testing.T) {
	log := &logStub{}
	r := mux.NewRouter()
	r.Use(RequestID, Logging(log))
	r.HandleFunc("/grid", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/grid?days=7", nil)
	req.Header.Set(requestid.Header, "req-9")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if assert.Len(t, log.lines, 1) {
		assert.Contains(t, log.lines[0], "GET /grid?days=7 -> 418")
		assert.Contains(t, log.lines[0], "request_id=req-9")
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelDashboard/pkg/requestid"
)

// Logging пишет строку access-лога на каждый запрос
func Logging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			log.Info("%s %s -> %d (%s) request_id=%s",
				r.Method, r.URL.RequestURI(), rec.status, time.Since(started), requestid.FromContext(r.Context()))
		})
	}
}

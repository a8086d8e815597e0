package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelDashboard/pkg/requestid"
)

// RequestID берет X-Request-ID из запроса или генерирует новый,
// кладет его в контекст и возвращает в заголовке ответа
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestid.Header))
		if id == "" || len(id) > 64 {
			id = requestid.New()
		}

		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.NewContext(r.Context(), id)))
	})
}

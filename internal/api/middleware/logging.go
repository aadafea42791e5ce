package middleware

import (
	"net/http"
	"time"
)

// Logging пишет строку лога на каждый завершённый запрос
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("%s %s - status=%d duration_ms=%d request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Milliseconds(), RequestIDFromContext(r.Context()))
		})
	}
}

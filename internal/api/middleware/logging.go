package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
)

// RequestLogger пишет в лог каждый запрос: 5xx как ошибку, 4xx как предупреждение
func RequestLogger(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, duration)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, duration)
			default:
				logger.Info("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, duration)
			}
		})
	}
}

// Recover перехватывает панику обработчика и отвечает 500
func Recover(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error("%s %s - panic recovered: %v", r.Method, r.URL.Path, p)
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

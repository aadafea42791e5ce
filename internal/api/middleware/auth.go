package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/auth"
)

// TokenValidator проверяет токен администратора
type TokenValidator interface {
	Validate(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает запрос дальше только с живым токеном в "Authorization: Bearer <token>"
func AdminAuth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := validator.Validate(r.Context(), handlers.BearerToken(r))
			if err != nil {
				if errors.Is(err, auth.ErrUnauthorized) {
					logger.Warn("%s %s - Unauthorized admin request", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w)
					return
				}
				logger.Error("%s %s - Failed to validate admin token: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

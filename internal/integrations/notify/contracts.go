package notify

import (
	"context"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// Notifier канал уведомлений о новых бронированиях
type Notifier interface {
	Name() string
	NotifyReservationCreated(ctx context.Context, r domain.Reservation) error
}

// FailureRecorder считает неудачные уведомления
type FailureRecorder interface {
	IncNotificationFailure(channel string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

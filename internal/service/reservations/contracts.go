package reservations

import (
	"context"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetOccupiedHorarios(ctx context.Context, cancha, fecha string) ([]string, error)
	ListRecent(ctx context.Context, limit uint64) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_reservation

import (
	"context"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetActiveBySlot(ctx context.Context, slot domain.Slot) ([]*domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// PriceRepository интерфейс репозитория цен
type PriceRepository interface {
	GetByCancha(ctx context.Context, cancha string) (*domain.Price, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier фоновая рассылка уведомлений о новом бронировании
type Notifier interface {
	ReservationCreated(r domain.Reservation)
}

// MetricsRecorder счётчики бронирований
type MetricsRecorder interface {
	IncReservationCreated()
	IncReservationConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

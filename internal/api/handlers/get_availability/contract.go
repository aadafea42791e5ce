package get_availability

import (
	"context"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/reservations/models"
)

type ReservationService interface {
	GetAvailability(ctx context.Context, cancha, fecha string) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

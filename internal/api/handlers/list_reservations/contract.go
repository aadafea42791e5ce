package list_reservations

import (
	"context"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

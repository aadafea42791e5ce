package set_price

import (
	"context"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/prices/models"
)

type PriceService interface {
	SetPrice(ctx context.Context, req *models.SetPriceRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

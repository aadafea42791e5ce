package prices

import (
	"context"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// PriceRepository интерфейс репозитория цен
type PriceRepository interface {
	GetAll(ctx context.Context) ([]*domain.Price, error)
	Update(ctx context.Context, cancha string, precio int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

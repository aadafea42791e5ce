package reservation

import (
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

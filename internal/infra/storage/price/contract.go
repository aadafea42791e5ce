package price

import (
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor

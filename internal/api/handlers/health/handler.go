package health

import (
	"net/http"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondOK(w)
}

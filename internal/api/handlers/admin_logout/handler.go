package admin_logout

import (
	"net/http"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
)

type Handler struct {
	service AuthService
}

func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// Handle POST /admin/logout
// Ответ всегда {"ok": true}, даже без токена
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context(), handlers.BearerToken(r))
	handlers.RespondOK(w)
}

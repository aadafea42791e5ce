package get_availability

import (
	"errors"
	"net/http"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/reservations"
)

const msgMissingParams = "faltan parámetros cancha y fecha"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /disponibilidad?cancha=...&fecha=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.service.GetAvailability(r.Context(), query.Get("cancha"), query.Get("fecha"))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /disponibilidad - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

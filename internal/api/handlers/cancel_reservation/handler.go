package cancel_reservation

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
)

const msgInvalidReservationID = "id de reserva inválido"

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

// Handle POST /cancelar/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("POST /cancelar/{id} - Invalid reservation ID: %q", idStr)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		h.logger.Error("POST /cancelar/{id} - Failed to cancel reservation: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cancelar/{id} - Reservation cancelled: id=%d", id)
	handlers.RespondOK(w)
}

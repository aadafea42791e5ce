package create_reservation

import (
	"errors"
	"net/http"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
	createReservation "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingFields      = "faltan datos obligatorios"
	msgSlotNotAvailable   = "el horario ya está reservado"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservar - Slot not available: cancha=%s, fecha=%s, horario=%s",
				req.Cancha, req.Fecha, req.Horario)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /reservar - Failed to create reservation: cancha=%s, fecha=%s, horario=%s, error=%v",
				req.Cancha, req.Fecha, req.Horario, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservar - Reservation created successfully: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, CreateReservationResponse{OK: true, ID: result.ID})
}

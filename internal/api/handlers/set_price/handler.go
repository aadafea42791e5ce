package set_price

import (
	"errors"
	"net/http"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/prices"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "cancha y precio son obligatorios, el precio no puede ser negativo"
	msgUnknownCancha      = "cancha desconocida"
)

type Handler struct {
	service PriceService
	logger  Logger
}

func NewHandler(service PriceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /admin/precios
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetPriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/precios - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.SetPrice(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, prices.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, prices.ErrUnknownCancha):
			h.logger.Warn("POST /admin/precios - Unknown cancha=%s", req.Cancha)
			handlers.RespondNotFound(w, msgUnknownCancha)

		default:
			h.logger.Error("POST /admin/precios - Failed to set price: cancha=%s, error=%v", req.Cancha, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondOK(w)
}

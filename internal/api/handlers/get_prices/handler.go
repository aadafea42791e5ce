package get_prices

import (
	"net/http"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
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

// Handle GET /precios
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	prices, err := h.service.GetPrices(r.Context())
	if err != nil {
		h.logger.Error("GET /precios - Failed to get prices: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prices)
}

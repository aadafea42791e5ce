package admin_login

import (
	"errors"
	"net/http"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/auth"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidCredentials = "credenciales inválidas"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{OK: true, Token: token})
}

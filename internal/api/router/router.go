package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers"
	adminLoginHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/admin_logout"
	cancelReservationHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/get_availability"
	getPricesHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/get_prices"
	healthHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/health"
	listReservationsHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/list_reservations"
	setPriceHandler "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/handlers/set_price"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/middleware"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/auth"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/prices"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/reservations"
	createReservationUC "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/usecase/create_reservation"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/logger"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/metrics"
)

const (
	msgRouteNotFound    = "ruta no encontrada"
	msgMethodNotAllowed = "método no permitido"
)

// Dependencies сервисы и use case, которые обслуживает HTTP API
type Dependencies struct {
	Auth              *auth.Service
	Prices            *prices.Service
	Reservations      *reservations.Service
	CreateReservation *createReservationUC.UseCase

	// Metrics nil, если метрики выключены
	Metrics     *metrics.Metrics
	MetricsPath string
	ServiceName string
	CORSOrigin  string

	Logger *logger.Logger
}

// NewRouter собирает маршруты API
// CORS, request id и логирование оборачивают весь роутер, чтобы работать и для preflight, и для 404
func NewRouter(deps Dependencies) http.Handler {
	log := deps.Logger

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	adminLogin := adminLoginHandler.NewHandler(deps.Auth, log)
	adminLogout := adminLogoutHandler.NewHandler(deps.Auth)
	getPrices := getPricesHandler.NewHandler(deps.Prices, log)
	setPrice := setPriceHandler.NewHandler(deps.Prices, log)
	getAvailability := getAvailabilityHandler.NewHandler(deps.Reservations, log)
	createReservation := createReservationHandler.NewHandler(deps.CreateReservation, log)
	cancelReservation := cancelReservationHandler.NewHandler(deps.Reservations, log)
	listReservations := listReservationsHandler.NewHandler(deps.Reservations, log)

	var notFound http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondNotFound(w, msgRouteNotFound)
	})
	var methodNotAllowed http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r := mux.NewRouter()

	if deps.Metrics != nil {
		metricsMiddleware := middleware.MetricsMiddleware(deps.Metrics, deps.ServiceName)
		r.Use(metricsMiddleware)
		// mux не применяет r.Use к 404/405, их оборачиваем отдельно
		notFound = metricsMiddleware(notFound)
		methodNotAllowed = metricsMiddleware(methodNotAllowed)
		r.Handle(deps.MetricsPath, deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)
	r.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)
	r.HandleFunc("/precios", getPrices.Handle).Methods(http.MethodGet)
	r.HandleFunc("/disponibilidad", getAvailability.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reservar", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	adminAuth := middleware.AdminAuth(deps.Auth, log)

	r.Handle("/admin/precios", adminAuth(http.HandlerFunc(setPrice.Handle))).Methods(http.MethodPost)
	r.Handle("/cancelar/{id}", adminAuth(http.HandlerFunc(cancelReservation.Handle))).Methods(http.MethodPost)
	r.Handle("/reservas", adminAuth(http.HandlerFunc(listReservations.Handle))).Methods(http.MethodGet)

	var h http.Handler = r
	h = middleware.Logging(log)(h)
	h = middleware.RequestID(h)
	h = middleware.CORS(deps.CORSOrigin)(h)

	return h
}

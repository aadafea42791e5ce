package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/auth"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/logger"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/metrics"
)

type staticValidator map[string]error

func (v staticValidator) Validate(_ context.Context, token string) error {
	if err, ok := v[token]; ok {
		return err
	}
	return auth.ErrUnauthorized
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth(t *testing.T) {
	validator := staticValidator{"good": nil, "broken": errors.New("redis down")}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantCalled: true},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "store failure", header: "Bearer broken", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			h := AdminAuth(validator, logger.Nop())(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/reservas", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	var called bool
	h := CORS("https://reservas.example.com")(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/reservar", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "https://reservas.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORS_PassesThrough(t *testing.T) {
	var called bool
	h := CORS("")(okHandler(&called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/precios", nil))

	assert.True(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test")
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "test"))
	r.HandleFunc("/cancelar/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPost)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/cancelar/"+id, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("test", http.MethodPost, "/cancelar/{id}", "200")))
}

func TestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	h := RequestID(Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/reservar", nil))

	assert.Contains(t, buf.String(), "POST /reservar - status=409")
}

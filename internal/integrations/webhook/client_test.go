package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/ptr"
)

func sampleReservation() domain.Reservation {
	return domain.Reservation{
		ID:        9,
		Nombre:    "Ana",
		Apellido:  "Pérez",
		Whatsapp:  "+5491100000000",
		Deporte:   ptr.Ptr("padel"),
		Cancha:    "Pádel 1",
		Fecha:     "2025-06-01",
		Horario:   "18:00",
		Precio:    12000,
		Estado:    domain.StatusConfirmed,
		CreatedAt: time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestNotifyReservationCreated_PostsFullPayload(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).NotifyReservationCreated(context.Background(), sampleReservation())
	require.NoError(t, err)

	assert.EqualValues(t, 9, got["id"])
	assert.Equal(t, "Ana", got["nombre"])
	assert.Equal(t, "padel", got["deporte"])
	assert.Equal(t, "Pádel 1", got["cancha"])
	assert.Equal(t, "18:00", got["horario"])
	assert.EqualValues(t, 12000, got["precio"])
	assert.Equal(t, "confirmada", got["estado"])
	assert.Contains(t, got, "fecha_creacion")
}

func TestNotifyReservationCreated_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).NotifyReservationCreated(context.Background(), sampleReservation())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestNotifyReservationCreated_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, 20*time.Millisecond).NotifyReservationCreated(context.Background(), sampleReservation())
	assert.ErrorIs(t, err, ErrInternal)
}

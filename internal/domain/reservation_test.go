package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_IsActive(t *testing.T) {
	r := &Reservation{Estado: StatusConfirmed}
	assert.True(t, r.IsActive())

	r.Estado = StatusCancelled
	assert.False(t, r.IsActive())
}

func TestReservation_Slot(t *testing.T) {
	r := &Reservation{Cancha: "Pádel 1", Fecha: "2025-06-01", Horario: "18:00"}
	assert.Equal(t, Slot{Cancha: "Pádel 1", Fecha: "2025-06-01", Horario: "18:00"}, r.Slot())
}

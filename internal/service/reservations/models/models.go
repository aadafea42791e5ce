package models

import (
	"time"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// AvailabilityResponse занятые времена поля на дату
type AvailabilityResponse struct {
	Ocupados []string `json:"ocupados"`
}

// ReservationResponse строка отчёта бронирований
type ReservationResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Whatsapp      string    `json:"whatsapp"`
	Deporte       *string   `json:"deporte"`
	Cancha        string    `json:"cancha"`
	Fecha         string    `json:"fecha"`
	Horario       string    `json:"horario"`
	Precio        int       `json:"precio"`
	Estado        string    `json:"estado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// FromDomainReservation конвертирует доменную модель в ответ
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		Nombre:        r.Nombre,
		Apellido:      r.Apellido,
		Whatsapp:      r.Whatsapp,
		Deporte:       r.Deporte,
		Cancha:        r.Cancha,
		Fecha:         r.Fecha,
		Horario:       r.Horario,
		Precio:        r.Precio,
		Estado:        string(r.Estado),
		FechaCreacion: r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список, пустой список остаётся пустым массивом в JSON
func FromDomainReservationList(list []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return result
}

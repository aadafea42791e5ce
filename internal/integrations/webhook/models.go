package webhook

import (
	"time"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// ReservationPayload тело уведомления о новом бронировании
type ReservationPayload struct {
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

// NewReservationPayload собирает тело уведомления из бронирования
func NewReservationPayload(r domain.Reservation) ReservationPayload {
	return ReservationPayload{
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

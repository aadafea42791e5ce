package domain

import "time"

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmada"
	StatusCancelled ReservationStatus = "cancelada"
)

// Reservation одно забронированное время на поле
type Reservation struct {
	ID        int64
	Nombre    string
	Apellido  string
	Whatsapp  string
	Deporte   *string
	Cancha    string
	Fecha     string // формат не проверяется, хранится как прислал клиент
	Horario   string
	Precio    int
	Estado    ReservationStatus
	CreatedAt time.Time
}

// IsActive true, если бронирование занимает слот
func (r *Reservation) IsActive() bool {
	return r.Estado != StatusCancelled
}

// Slot возвращает слот, который занимает бронирование
func (r *Reservation) Slot() Slot {
	return Slot{Cancha: r.Cancha, Fecha: r.Fecha, Horario: r.Horario}
}

// Slot тройка (поле, дата, время), которую можно забронировать
type Slot struct {
	Cancha  string
	Fecha   string
	Horario string
}

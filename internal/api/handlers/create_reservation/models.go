package create_reservation

import (
	createReservation "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Whatsapp string  `json:"whatsapp"`
	Deporte  *string `json:"deporte,omitempty"`
	Cancha   string  `json:"cancha"`
	Fecha    string  `json:"fecha"`
	Horario  string  `json:"horario"`
	Precio   *int    `json:"precio,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Nombre:   r.Nombre,
		Apellido: r.Apellido,
		Whatsapp: r.Whatsapp,
		Deporte:  r.Deporte,
		Cancha:   r.Cancha,
		Fecha:    r.Fecha,
		Horario:  r.Horario,
		Precio:   r.Precio,
	}
}

package create_reservation

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот уже занят неотменённым бронированием
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

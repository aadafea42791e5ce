package prices

import "errors"

var (
	// ErrInvalidInput возвращается, если не передано поле или цена
	ErrInvalidInput = errors.New("prices: invalid input data")

	// ErrUnknownCancha возвращается при обновлении цены поля, которого нет в таблице цен
	ErrUnknownCancha = errors.New("prices: unknown cancha")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("prices: internal error")
)

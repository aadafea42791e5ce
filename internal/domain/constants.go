package domain

import "time"

const (
	// SessionTTL время жизни токена администратора, без продления
	SessionTTL = 8 * time.Hour

	// SessionTokenBytes длина случайной части токена
	SessionTokenBytes = 32

	// DefaultReservationListLimit сколько последних бронирований отдаёт отчёт
	DefaultReservationListLimit = 500
)

package sessions

import "errors"

var (
	// ErrStore возвращается при ошибке хранилища сессий
	ErrStore = errors.New("sessions: store error")

	// ErrInvalidTTL возвращается при неположительном времени жизни
	ErrInvalidTTL = errors.New("sessions: ttl must be positive")
)

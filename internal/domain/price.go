package domain

import "time"

// Price цена поля
type Price struct {
	Cancha      string
	Precio      int
	Actualizado time.Time
}

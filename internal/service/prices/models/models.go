package models

import "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"

// PricesResponse цены по названию поля
type PricesResponse map[string]int

// SetPriceRequest запрос на изменение цены
// Precio указатель, чтобы отличить отсутствие цены от нулевой цены
type SetPriceRequest struct {
	Cancha string
	Precio *int
}

// FromDomainPrices конвертирует список цен в словарь
func FromDomainPrices(list []*domain.Price) PricesResponse {
	result := make(PricesResponse, len(list))
	for _, p := range list {
		result[p.Cancha] = p.Precio
	}
	return result
}

package set_price

import "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/prices/models"

// SetPriceRequest HTTP request model
type SetPriceRequest struct {
	Cancha string `json:"cancha"`
	Precio *int   `json:"precio"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetPriceRequest) ToServiceRequest() *models.SetPriceRequest {
	return &models.SetPriceRequest{
		Cancha: r.Cancha,
		Precio: r.Precio,
	}
}

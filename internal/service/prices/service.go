package prices

import (
	"context"
	"errors"
	"fmt"
	"strings"

	priceRepo "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/infra/storage/price"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/prices/models"
)

// Service сервис цен полей
type Service struct {
	repo   PriceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса цен
func NewService(repo PriceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetPrices возвращает цены всех полей
func (s *Service) GetPrices(ctx context.Context) (models.PricesResponse, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetPrices: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPrices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPrices(list), nil
}

// SetPrice выставляет цену поля
// Цена обязательна, но может быть нулевой
func (s *Service) SetPrice(ctx context.Context, req *models.SetPriceRequest) error {
	cancha := strings.TrimSpace(req.Cancha)

	if cancha == "" || req.Precio == nil {
		s.logger.Warn("SetPrice: missing cancha or precio")
		return fmt.Errorf("%w: cancha and precio are required", ErrInvalidInput)
	}
	if *req.Precio < 0 {
		s.logger.Warn("SetPrice: negative precio=%d for cancha=%s", *req.Precio, cancha)
		return fmt.Errorf("%w: precio must not be negative", ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, cancha, *req.Precio); err != nil {
		if errors.Is(err, priceRepo.ErrPriceNotFound) {
			s.logger.Warn("SetPrice: cancha=%s has no price row", cancha)
			return ErrUnknownCancha
		}
		s.logger.Error("SetPrice: repository error for cancha=%s: %v", cancha, err)
		return fmt.Errorf("%w: SetPrice - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetPrice: cancha=%s precio=%d", cancha, *req.Precio)
	return nil
}

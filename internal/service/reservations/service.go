package reservations

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/reservations/models"
)

// Service сервис чтения и отмены бронирований
type Service struct {
	repo      ReservationRepository
	listLimit uint64
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
// listLimit - сколько последних бронирований отдаёт отчёт администратора
func NewService(repo ReservationRepository, listLimit uint64, logger Logger) *Service {
	return &Service{
		repo:      repo,
		listLimit: listLimit,
		logger:    logger,
	}
}

// GetAvailability возвращает занятые времена поля на дату
func (s *Service) GetAvailability(ctx context.Context, cancha, fecha string) (*models.AvailabilityResponse, error) {
	cancha = strings.TrimSpace(cancha)
	fecha = strings.TrimSpace(fecha)

	if cancha == "" || fecha == "" {
		s.logger.Warn("GetAvailability: missing cancha=%q or fecha=%q", cancha, fecha)
		return nil, fmt.Errorf("%w: cancha and fecha are required", ErrInvalidInput)
	}

	horarios, err := s.repo.GetOccupiedHorarios(ctx, cancha, fecha)
	if err != nil {
		s.logger.Error("GetAvailability: repository error for cancha=%s, fecha=%s: %v", cancha, fecha, err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}

	return &models.AvailabilityResponse{Ocupados: horarios}, nil
}

// Cancel помечает бронирование отменённым
// Неизвестный или уже отменённый id не ошибка
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	found, err := s.repo.Cancel(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !found {
		s.logger.Warn("Cancel: reservation id=%d does not exist, nothing to cancel", id)
	}

	return nil
}

// List возвращает последние бронирования, новые первыми
func (s *Service) List(ctx context.Context) ([]models.ReservationResponse, error) {
	list, err := s.repo.ListRecent(ctx, s.listLimit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

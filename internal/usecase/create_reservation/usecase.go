package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	priceRepo "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/infra/storage/price"
	reservationRepo "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/infra/storage/reservation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	priceRepo       PriceRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	priceRepo PriceRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		priceRepo:       priceRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости и вставка идут в одной транзакции (READ COMMITTED),
// гонку двух одновременных запросов за один слот закрывает уникальный индекс по активному слоту
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := normalizeRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: cancha=%s, fecha=%s, horario=%s", req.Cancha, req.Fecha, req.Horario)

	slot := domain.Slot{Cancha: req.Cancha, Fecha: req.Fecha, Horario: req.Horario}

	var result *domain.Reservation

	// 2. Выполняем операции с БД в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Активные бронирования слота с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.GetActiveBySlot(txCtx, slot)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations for slot: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		if len(existing) > 0 {
			uc.logger.Warn("CreateReservation: slot already taken by reservation id=%d", existing[0].ID)
			return ErrSlotNotAvailable
		}

		// 2.2. Цена: из запроса или текущая цена поля
		precio, err := uc.resolvePrice(txCtx, req)
		if err != nil {
			return err
		}

		// 2.3. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Nombre:   req.Nombre,
			Apellido: req.Apellido,
			Whatsapp: req.Whatsapp,
			Deporte:  req.Deporte,
			Cancha:   req.Cancha,
			Fecha:    req.Fecha,
			Horario:  req.Horario,
			Precio:   precio,
			Estado:   domain.StatusConfirmed,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Уникальный индекс мог отклонить вставку конкурентного запроса
		if errors.Is(err, ErrSlotNotAvailable) || reservationRepo.IsSlotConflict(err) {
			uc.logger.Warn("CreateReservation: slot cancha=%s, fecha=%s, horario=%s is not available",
				req.Cancha, req.Fecha, req.Horario)
			uc.metrics.IncReservationConflict()
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 3. Уведомления уходят в фоне и не влияют на ответ
	uc.notifier.ReservationCreated(*result)

	return &Response{ID: result.ID}, nil
}

// resolvePrice возвращает цену из запроса, а если её нет, текущую цену поля (0 для неизвестного поля)
func (uc *UseCase) resolvePrice(ctx context.Context, req *Request) (int, error) {
	if req.Precio != nil {
		return *req.Precio, nil
	}

	price, err := uc.priceRepo.GetByCancha(ctx, req.Cancha)
	if err != nil {
		if errors.Is(err, priceRepo.ErrPriceNotFound) {
			uc.logger.Info("CreateReservation: no price for cancha=%s, using 0", req.Cancha)
			return 0, nil
		}
		uc.logger.Error("CreateReservation: failed to get price for cancha=%s: %v", req.Cancha, err)
		return 0, fmt.Errorf("%w: failed to get price: %v", ErrInternal, err)
	}

	return price.Precio, nil
}

package notify

import (
	"context"
	"sync"
	"time"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// Dispatcher рассылает уведомления в фоне, не задерживая ответ клиенту
// Ошибки каналов только логируются и считаются в метриках
type Dispatcher struct {
	notifiers []Notifier
	timeout   time.Duration
	recorder  FailureRecorder
	logger    Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher создает диспетчер; timeout ограничивает каждую отправку
func NewDispatcher(notifiers []Notifier, timeout time.Duration, recorder FailureRecorder, logger Logger) *Dispatcher {
	return &Dispatcher{
		notifiers: notifiers,
		timeout:   timeout,
		recorder:  recorder,
		logger:    logger,
	}
}

// Enabled true, если настроен хотя бы один канал
func (d *Dispatcher) Enabled() bool {
	return len(d.notifiers) > 0
}

// ReservationCreated запускает отправку во все каналы и сразу возвращается
func (d *Dispatcher) ReservationCreated(r domain.Reservation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Warn("ReservationCreated: dispatcher closed, reservation id=%d not notified", r.ID)
		return
	}

	for _, n := range d.notifiers {
		d.wg.Add(1)
		go d.send(n, r)
	}
}

func (d *Dispatcher) send(n Notifier, r domain.Reservation) {
	defer d.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := n.NotifyReservationCreated(ctx, r); err != nil {
		d.logger.Error("ReservationCreated: %s notification failed for reservation id=%d: %v", n.Name(), r.ID, err)
		if d.recorder != nil {
			d.recorder.IncNotificationFailure(n.Name())
		}
		return
	}

	d.logger.Info("ReservationCreated: %s notified for reservation id=%d", n.Name(), r.ID)
}

// Close перестаёт принимать новые уведомления и ждёт уже запущенные, но не дольше ctx
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

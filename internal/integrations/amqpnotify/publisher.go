package amqpnotify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/integrations/webhook"
)

// Channel имя канала для логов и метрик
const Channel = "amqp"

// channel часть *amqp.Channel, нужная публикатору
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события о бронированиях в topic exchange
type Publisher struct {
	conn       *amqp.Connection
	ch         channel
	exchange   string
	routingKey string
}

// NewPublisher подключается к брокеру и объявляет durable topic exchange
func NewPublisher(url, exchange, routingKey string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange, routingKey: routingKey}, nil
}

// Name имя канала уведомлений
func (p *Publisher) Name() string {
	return Channel
}

// NotifyReservationCreated публикует бронирование как persistent JSON сообщение
func (p *Publisher) NotifyReservationCreated(ctx context.Context, r domain.Reservation) error {
	body, err := json.Marshal(webhook.NewReservationPayload(r))
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    fmt.Sprintf("reserva-%d", r.ID),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

// Channel имя канала для логов и метрик
const Channel = "webhook"

// Client отправляет бронирование на внешний URL
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient создает новый экземпляр webhook клиента
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name имя канала уведомлений
func (c *Client) Name() string {
	return Channel
}

// NotifyReservationCreated отправляет POST с полным набором полей бронирования
// Попытка одна, без повторов
func (c *Client) NotifyReservationCreated(ctx context.Context, r domain.Reservation) error {
	body, err := json.Marshal(NewReservationPayload(r))
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status code %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(respBody))
	}

	// Дочитываем тело, чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

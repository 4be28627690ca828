package notifservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendReservationEvent отправляет событие по записи
func (c *Client) SendReservationEvent(ctx context.Context, event *ReservationEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/reservations", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendReservationEventWithGracefulDegradation отправляет событие с graceful degradation
// Уведомления не критичны для бронирования: при недоступности сервиса возвращает
// ErrServiceDegraded, вызывающая сторона логирует и продолжает работу
func (c *Client) SendReservationEventWithGracefulDegradation(ctx context.Context, event *ReservationEvent) error {
	c.log.Info("Sending reservation event type=%s reservation_id=%d", event.Type, event.ReservationID)

	if err := c.SendReservationEvent(ctx, event); err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("NotifService unavailable, applying graceful degradation for reservation_id=%d: %v",
			event.ReservationID, err)
		return fmt.Errorf("%w: reservation_id=%d, error=%v", ErrServiceDegraded, event.ReservationID, err)
	}

	c.log.Info("Successfully sent reservation event type=%s reservation_id=%d", event.Type, event.ReservationID)
	return nil
}

package mailerservice

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

// Client клиент для работы с внутренним mailer-сервисом
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента mailer-сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет гостю письмо-подтверждение бронирования
func (c *Client) SendBookingConfirmation(ctx context.Context, msg *BookingConfirmation) error {
	url := fmt.Sprintf("%s/internal/mail/booking-confirmation", c.baseURL)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
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
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendBookingConfirmationWithGracefulDegradation отправляет письмо с graceful degradation
// Подтверждённое бронирование важнее письма: при недоступности mailer-а
// возвращается ErrServiceDegraded, вызывающий код бронирование не откатывает
func (c *Client) SendBookingConfirmationWithGracefulDegradation(ctx context.Context, msg *BookingConfirmation) error {
	c.log.Info("Sending booking confirmation for booking_id=%d to=%s", msg.BookingID, msg.To)

	if err := c.SendBookingConfirmation(ctx, msg); err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Mailer unavailable, applying graceful degradation for booking_id=%d: %v", msg.BookingID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, msg.BookingID, err)
	}

	c.log.Info("Booking confirmation sent for booking_id=%d", msg.BookingID)
	return nil
}

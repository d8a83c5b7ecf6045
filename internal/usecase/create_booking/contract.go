package create_booking

import (
	"context"
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	"github.com/larespalmas/hotel-booking-service/internal/integrations/mailerservice"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	// GetByIDForUpdate блокирует строку номера внутри транзакции
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error)
	RefreshAvailability(ctx context.Context, roomID int64, today time.Time) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс key-value хранилища настроек
type SettingsRepository interface {
	GetIntOrDefault(ctx context.Context, key string, def int) (int, error)
	GetStringOrDefault(ctx context.Context, key, def string) (string, error)
}

// MailerClient интерфейс клиента mailer-сервиса
type MailerClient interface {
	SendBookingConfirmationWithGracefulDegradation(ctx context.Context, msg *mailerservice.BookingConfirmation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

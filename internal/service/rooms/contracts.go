package rooms

import (
	"context"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Room, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

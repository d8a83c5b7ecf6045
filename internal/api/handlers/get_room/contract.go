package get_room

import (
	"context"

	"github.com/larespalmas/hotel-booking-service/internal/service/rooms/models"
)

type RoomsService interface {
	GetBySlug(ctx context.Context, slug string) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

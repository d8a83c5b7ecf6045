package get_room_bookings

import (
	"context"

	"github.com/larespalmas/hotel-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetRoomBookings(ctx context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

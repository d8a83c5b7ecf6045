package update_booking_status

import (
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	"github.com/larespalmas/hotel-booking-service/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BookingStatusResponse HTTP response model
type BookingStatusResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingStatusResponse {
	return &BookingStatusResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		CheckIn:   resp.CheckIn.Format(domain.DateFormat),
		CheckOut:  resp.CheckOut.Format(domain.DateFormat),
		Status:    resp.Status,
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

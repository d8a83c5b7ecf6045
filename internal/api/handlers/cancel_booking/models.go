package cancel_booking

import (
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	"github.com/larespalmas/hotel-booking-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	GuestEmail string `json:"guestEmail,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// CancelledBookingResponse HTTP response model
type CancelledBookingResponse struct {
	ID                 int64   `json:"id"`
	RoomID             int64   `json:"roomId"`
	CheckIn            string  `json:"checkIn"`
	CheckOut           string  `json:"checkOut"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(adminID *int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		GuestEmail: r.GuestEmail,
		AdminID:    adminID,
		Reason:     r.Reason,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *CancelledBookingResponse {
	out := &CancelledBookingResponse{
		ID:                 resp.ID,
		RoomID:             resp.RoomID,
		CheckIn:            resp.CheckIn.Format(domain.DateFormat),
		CheckOut:           resp.CheckOut.Format(domain.DateFormat),
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}
	return out
}

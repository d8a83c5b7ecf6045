package get_booking

import (
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	"github.com/larespalmas/hotel-booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64    `json:"id"`
	RoomID             int64    `json:"roomId"`
	GuestName          string   `json:"guestName"`
	GuestEmail         string   `json:"guestEmail"`
	GuestPhone         string   `json:"guestPhone"`
	GuestCountry       *string  `json:"guestCountry,omitempty"`
	GuestAddress       *string  `json:"guestAddress,omitempty"`
	SpecialRequests    *string  `json:"specialRequests,omitempty"`
	NumberOfGuests     int      `json:"numberOfGuests"`
	CheckIn            string   `json:"checkIn"`
	CheckOut           string   `json:"checkOut"`
	Nights             int      `json:"nights"`
	Status             string   `json:"status"`
	TotalPrice         float64  `json:"totalPrice"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	out := &BookingResponse{
		ID:                 resp.ID,
		RoomID:             resp.RoomID,
		GuestName:          resp.GuestName,
		GuestEmail:         resp.GuestEmail,
		GuestPhone:         resp.GuestPhone,
		GuestCountry:       resp.GuestCountry,
		GuestAddress:       resp.GuestAddress,
		SpecialRequests:    resp.SpecialRequests,
		NumberOfGuests:     resp.NumberOfGuests,
		CheckIn:            resp.CheckIn.Format(domain.DateFormat),
		CheckOut:           resp.CheckOut.Format(domain.DateFormat),
		Nights:             resp.Nights,
		Status:             resp.Status,
		TotalPrice:         resp.TotalPrice,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}
	return out
}

package create_booking

import (
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	createBooking "github.com/larespalmas/hotel-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID          int64   `json:"roomId"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	GuestCountry    *string `json:"guestCountry,omitempty"`
	GuestAddress    *string `json:"guestAddress,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	CheckIn         string  `json:"checkIn"`  // "2026-03-15"
	CheckOut        string  `json:"checkOut"` // "2026-03-18"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	RoomID          int64   `json:"roomId"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	GuestCountry    *string `json:"guestCountry,omitempty"`
	GuestAddress    *string `json:"guestAddress,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Status          string  `json:"status"`
	Nights          int     `json:"nights"`
	TotalPrice      float64 `json:"totalPrice"`
	Currency        string  `json:"currency"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:          r.RoomID,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		GuestCountry:    r.GuestCountry,
		GuestAddress:    r.GuestAddress,
		SpecialRequests: r.SpecialRequests,
		NumberOfGuests:  r.NumberOfGuests,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		RoomID:          resp.RoomID,
		GuestName:       resp.GuestName,
		GuestEmail:      resp.GuestEmail,
		GuestPhone:      resp.GuestPhone,
		GuestCountry:    resp.GuestCountry,
		GuestAddress:    resp.GuestAddress,
		SpecialRequests: resp.SpecialRequests,
		NumberOfGuests:  resp.NumberOfGuests,
		CheckIn:         resp.CheckIn.Format(domain.DateFormat),
		CheckOut:        resp.CheckOut.Format(domain.DateFormat),
		Status:          resp.Status,
		Nights:          resp.Nights,
		TotalPrice:      resp.TotalPrice,
		Currency:        resp.Currency,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

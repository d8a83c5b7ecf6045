package models

import (
	"fmt"
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
)

// BookingResponse модель бронирования для вызывающего слоя
type BookingResponse struct {
	ID     int64
	RoomID int64

	GuestName       string
	GuestEmail      string
	GuestPhone      string
	GuestCountry    *string
	GuestAddress    *string
	SpecialRequests *string

	NumberOfGuests int
	CheckIn        time.Time
	CheckOut       time.Time
	Nights         int
	Status         string
	TotalPrice     float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// GetRoomBookingsRequest запрос списка бронирований номера (административный)
type GetRoomBookingsRequest struct {
	RoomID          int64
	From            *time.Time
	To              *time.Time
	Status          *string
	IncludeReleased bool
}

// CancelBookingRequest запрос отмены бронирования
// Гость подтверждает владение email-ом бронирования; администратор
// отменяет любое бронирование
type CancelBookingRequest struct {
	GuestEmail string
	AdminID    *int64
	Reason     string
}

// UpdateStatusRequest запрос смены статуса (административный)
type UpdateStatusRequest struct {
	AdminID int64
	Status  string
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetRoomBookingsRequest) ToDomainFilter() (domain.RoomBookingsFilter, error) {
	filter := domain.RoomBookingsFilter{
		RoomID:          r.RoomID,
		From:            r.From,
		To:              r.To,
		IncludeReleased: r.IncludeReleased,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.RoomBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в статус бронирования
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		RoomID:             b.RoomID,
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         b.GuestPhone,
		GuestCountry:       b.GuestCountry,
		GuestAddress:       b.GuestAddress,
		SpecialRequests:    b.SpecialRequests,
		NumberOfGuests:     b.NumberOfGuests,
		CheckIn:            b.CheckInDate,
		CheckOut:           b.CheckOutDate,
		Nights:             b.Nights(),
		Status:             string(b.Status),
		TotalPrice:         b.TotalPrice,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

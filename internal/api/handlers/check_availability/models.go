package check_availability

import (
	"fmt"
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	checkAvailability "github.com/larespalmas/hotel-booking-service/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available          bool    `json:"available"`
	RoomID             int64   `json:"roomId"`
	RoomName           string  `json:"roomName,omitempty"`
	CheckIn            string  `json:"checkIn"`
	CheckOut           string  `json:"checkOut"`
	Nights             int     `json:"nights"`
	RemainingInventory int     `json:"remainingInventory"`
	TotalPrice         float64 `json:"totalPrice,omitempty"`
	Message            string  `json:"message,omitempty"`
}

// parseQueryDates парсит параметры checkIn/checkOut из query string
func parseQueryDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	if checkIn == "" || checkOut == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("checkIn and checkOut query parameters are required")
	}

	from, err := time.Parse(domain.DateFormat, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse checkIn: %w", err)
	}

	to, err := time.Parse(domain.DateFormat, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse checkOut: %w", err)
	}

	return from, to, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response, roomID int64, checkIn, checkOut time.Time) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Available:          resp.Available,
		RoomID:             roomID,
		CheckIn:            checkIn.Format(domain.DateFormat),
		CheckOut:           checkOut.Format(domain.DateFormat),
		Nights:             resp.Nights,
		RemainingInventory: resp.RemainingInventory,
		TotalPrice:         resp.TotalPrice,
	}
	if resp.Room != nil {
		out.RoomName = resp.Room.Name
	}
	return out
}

// unavailableResponse ответ с отказом по датовой политике
// Политика отвечает 200 с available=false: запрос корректен по форме,
// просто на эти даты забронировать нельзя
func unavailableResponse(roomID int64, checkIn, checkOut time.Time, message string) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: false,
		RoomID:    roomID,
		CheckIn:   checkIn.Format(domain.DateFormat),
		CheckOut:  checkOut.Format(domain.DateFormat),
		Message:   message,
	}
}

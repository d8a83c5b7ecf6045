package get_room_bookings

import (
	"net/url"
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	"github.com/larespalmas/hotel-booking-service/internal/service/bookings/models"
)

// BookingItem элемент списка бронирований
type BookingItem struct {
	ID             int64   `json:"id"`
	GuestName      string  `json:"guestName"`
	GuestEmail     string  `json:"guestEmail"`
	NumberOfGuests int     `json:"numberOfGuests"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	Nights         int     `json:"nights"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"totalPrice"`
	CreatedAt      string  `json:"createdAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	RoomID   int64         `json:"roomId"`
	Bookings []BookingItem `json:"bookings"`
	Total    int           `json:"total"`
}

// ParseQuery читает фильтры списка из query string
// from/to задают окно пересечения, status сужает до одного статуса,
// includeReleased=true добавляет отменённые и выехавшие бронирования
func ParseQuery(roomID int64, query url.Values) (*models.GetRoomBookingsRequest, error) {
	req := &models.GetRoomBookingsRequest{
		RoomID:          roomID,
		IncludeReleased: query.Get("includeReleased") == "true",
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(roomID int64, resp *models.BookingListResponse) *BookingListResponse {
	items := make([]BookingItem, len(resp.Bookings))
	for i, b := range resp.Bookings {
		items[i] = BookingItem{
			ID:             b.ID,
			GuestName:      b.GuestName,
			GuestEmail:     b.GuestEmail,
			NumberOfGuests: b.NumberOfGuests,
			CheckIn:        b.CheckIn.Format(domain.DateFormat),
			CheckOut:       b.CheckOut.Format(domain.DateFormat),
			Nights:         b.Nights,
			Status:         b.Status,
			TotalPrice:     b.TotalPrice,
			CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{
		RoomID:   roomID,
		Bookings: items,
		Total:    resp.Total,
	}
}

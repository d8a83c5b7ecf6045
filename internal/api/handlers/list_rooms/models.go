package list_rooms

import (
	"github.com/larespalmas/hotel-booking-service/internal/service/rooms/models"
)

// RoomItem элемент каталога номеров
type RoomItem struct {
	ID             int64    `json:"id"`
	Slug           string   `json:"slug"`
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	PricePerNight  float64  `json:"pricePerNight"`
	PriceSingle    *float64 `json:"priceSingle,omitempty"`
	PriceDouble    *float64 `json:"priceDouble,omitempty"`
	PriceTriple    *float64 `json:"priceTriple,omitempty"`
	MaxGuests      int      `json:"maxGuests"`
	SizeSqm        *int     `json:"sizeSqm,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
	ImageURL       *string  `json:"imageUrl,omitempty"`
	TotalRooms     int      `json:"totalRooms"`
	RoomsAvailable int      `json:"roomsAvailable"`
	Active         bool     `json:"active"`
}

// RoomListResponse HTTP response model
type RoomListResponse struct {
	Rooms []RoomItem `json:"rooms"`
	Total int        `json:"total"`
}

// FromServiceRoom конвертирует номер из модели сервиса
func FromServiceRoom(r *models.RoomResponse) RoomItem {
	return RoomItem{
		ID:             r.ID,
		Slug:           r.Slug,
		Name:           r.Name,
		Description:    r.Description,
		PricePerNight:  r.PricePerNight,
		PriceSingle:    r.PriceSingle,
		PriceDouble:    r.PriceDouble,
		PriceTriple:    r.PriceTriple,
		MaxGuests:      r.MaxGuests,
		SizeSqm:        r.SizeSqm,
		Amenities:      r.Amenities,
		ImageURL:       r.ImageURL,
		TotalRooms:     r.TotalRooms,
		RoomsAvailable: r.RoomsAvailable,
		Active:         r.Active,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RoomListResponse) *RoomListResponse {
	items := make([]RoomItem, len(resp.Rooms))
	for i := range resp.Rooms {
		items[i] = FromServiceRoom(&resp.Rooms[i])
	}
	return &RoomListResponse{
		Rooms: items,
		Total: resp.Total,
	}
}

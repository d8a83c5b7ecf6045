package models

import (
	"github.com/larespalmas/hotel-booking-service/internal/domain"
)

// RoomResponse модель номера для вызывающего слоя
type RoomResponse struct {
	ID          int64
	Slug        string
	Name        string
	Description *string

	PricePerNight float64
	PriceSingle   *float64
	PriceDouble   *float64
	PriceTriple   *float64

	MaxGuests      int
	TotalRooms     int
	RoomsAvailable int
	SizeSqm        *int
	Amenities      []string
	ImageURL       *string
	Active         bool
}

// RoomListResponse список номеров
type RoomListResponse struct {
	Rooms []RoomResponse
	Total int
}

// FromDomainRoom конвертирует domain номер в response
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:             r.ID,
		Slug:           r.Slug,
		Name:           r.Name,
		Description:    r.Description,
		PricePerNight:  r.PricePerNight,
		PriceSingle:    r.PriceSingle,
		PriceDouble:    r.PriceDouble,
		PriceTriple:    r.PriceTriple,
		MaxGuests:      r.MaxGuests,
		TotalRooms:     r.TotalRooms,
		RoomsAvailable: r.RoomsAvailable,
		SizeSqm:        r.SizeSqm,
		Amenities:      r.Amenities,
		ImageURL:       r.ImageURL,
		Active:         r.Active,
	}
}

// FromDomainRoomList конвертирует список domain номеров в response
func FromDomainRoomList(roomList []*domain.Room) *RoomListResponse {
	result := make([]RoomResponse, len(roomList))
	for i, r := range roomList {
		result[i] = *FromDomainRoom(r)
	}
	return &RoomListResponse{
		Rooms: result,
		Total: len(result),
	}
}

package domain

import "time"

// Room represents a bookable room type with its inventory counts
type Room struct {
	ID          int64
	Name        string
	Slug        string
	Description *string

	PricePerNight float64
	// Optional per-occupancy prices; fall back to PricePerNight when nil
	PriceSingle *float64
	PriceDouble *float64
	PriceTriple *float64

	MaxGuests int
	SizeSqm   *int
	Amenities []string
	ImageURL  *string

	// TotalRooms физическое количество номеров этого типа
	TotalRooms int
	// RoomsAvailable денормализованный кэш: сколько номеров свободно сегодня
	// Источник истины - живые бронирования; кэш пересчитывается в той же
	// транзакции при каждом изменении бронирований
	RoomsAvailable int

	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasInventory returns true if the room type has at least one physical unit
func (r *Room) HasInventory() bool {
	return r.TotalRooms > 0
}

// PriceForGuests returns the nightly price for the given occupancy
// Falls back to the base price when no per-occupancy price is set
func (r *Room) PriceForGuests(guests int) float64 {
	switch guests {
	case 1:
		if r.PriceSingle != nil {
			return *r.PriceSingle
		}
	case 2:
		if r.PriceDouble != nil {
			return *r.PriceDouble
		}
	case 3:
		if r.PriceTriple != nil {
			return *r.PriceTriple
		}
	}
	return r.PricePerNight
}

package create_booking

import "time"

// Request модель запроса на создание бронирования
// Теги validate описывают обязательность полей и грамматику email;
// правила применяются в порядке объявления полей
type Request struct {
	RoomID          int64     `validate:"required,gt=0"`
	GuestName       string    `validate:"required,max=150"`
	GuestEmail      string    `validate:"required,email"`
	GuestPhone      string    `validate:"required,max=50"`
	GuestCountry    *string   `validate:"omitempty,max=100"`
	GuestAddress    *string   `validate:"omitempty,max=300"`
	SpecialRequests *string   `validate:"omitempty,max=1000"`
	NumberOfGuests  int       `validate:"required,gt=0"`
	CheckIn         time.Time `validate:"required"`
	CheckOut        time.Time `validate:"required"`
}

// Response модель ответа с созданным бронированием
type Response struct {
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
	Status         string

	Nights     int
	TotalPrice float64
	Currency   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

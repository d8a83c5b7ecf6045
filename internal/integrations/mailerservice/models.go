package mailerservice

// BookingConfirmation payload письма-подтверждения бронирования
type BookingConfirmation struct {
	To           string  `json:"to"`
	GuestName    string  `json:"guest_name"`
	RoomName     string  `json:"room_name"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"total_price"`
	Currency     string  `json:"currency"`
	BookingID    int64   `json:"booking_id"`
}

// ErrorResponse модель ошибки от mailer-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package domain

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultMaxAdvanceBookingDays = 365
	DefaultBookingStatus         = StatusConfirmed
	DefaultCurrency              = "EUR"
)

// Settings keys (хранятся в key-value таблице hotel_settings)
const (
	SettingMaxAdvanceBookingDays = "max_advance_booking_days"
	SettingDefaultBookingStatus  = "default_booking_status"
	SettingCurrency              = "currency"
)

// Business validation constants
const (
	MinAdvanceBookingDays       = 1
	MaxAdvanceBookingDays       = 730 // 2 years
	MaxGuestNameLength          = 150
	MaxGuestPhoneLength         = 50
	MaxSpecialRequestsLength    = 1000
	MaxCancellationReasonLength = 500
)

// LiveStatuses статусы бронирований, которые держат инвентарь
// Используются при подсчёте доступности номера
var LiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// ReleasedStatuses статусы бронирований, которые инвентарь не держат
var ReleasedStatuses = []BookingStatus{
	StatusCheckedOut,
	StatusCancelled,
}

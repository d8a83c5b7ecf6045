package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a room booking in the system
type Booking struct {
	ID     int64
	RoomID int64

	GuestName       string
	GuestEmail      string
	GuestPhone      string
	GuestCountry    *string
	GuestAddress    *string
	SpecialRequests *string

	NumberOfGuests int

	// Полуоткрытый интервал [CheckInDate, CheckOutDate):
	// день выезда инвентарь не занимает
	CheckInDate  time.Time
	CheckOutDate time.Time

	Status     BookingStatus
	TotalPrice float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLive returns true if the booking still holds room inventory
func (b *Booking) IsLive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusCheckedIn
}

// CanBeCancelled returns true if the booking can be cancelled by a guest
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo returns true if the booking may move to the given status
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	allowed, ok := statusTransitions[b.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == next {
			return true
		}
	}
	return false
}

// Range returns the stay interval of the booking
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
}

// Nights returns the number of nights of the stay
func (b *Booking) Nights() int {
	return b.Range().Nights()
}

// statusTransitions допустимые административные переходы статусов
// Отмена гостем идет отдельным путем через CanBeCancelled
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// RoomBookingsFilter фильтр для получения бронирований номера
type RoomBookingsFilter struct {
	RoomID          int64          // Обязательный параметр
	From            *time.Time     // Начало окна пересечения (опционально)
	To              *time.Time     // Конец окна пересечения, не включается (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeReleased bool           // Включать ли бронирования, не держащие инвентарь
}

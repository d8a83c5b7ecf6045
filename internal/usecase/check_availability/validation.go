package check_availability

import (
	"fmt"
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	return nil
}

// validateDates применяет датовую политику бронирования:
// заезд не в прошлом, минимум одна ночь, заезд внутри окна
// предварительного бронирования
func validateDates(rng domain.DateRange, now time.Time, maxAdvanceDays int) error {
	// Сравниваем календарные даты в одной зоне: now может быть в зоне
	// сервера, а даты заезда парсятся как UTC-полночь
	today := domain.CalendarDate(now)
	checkIn := domain.CalendarDate(rng.CheckIn)

	if checkIn.Before(today) {
		return ErrPastDate
	}

	if !rng.IsValid() {
		return ErrInvalidRange
	}

	maxCheckIn := today.AddDate(0, 0, maxAdvanceDays)
	if checkIn.After(maxCheckIn) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrAdvanceWindowExceeded, maxAdvanceDays)
	}

	return nil
}

// countLiveOverlapping подсчитывает живые бронирования, пересекающие интервал
// Пересечение считается по правилу полуоткрытых интервалов: выезд и заезд
// в один день не конфликтуют
func countLiveOverlapping(rng domain.DateRange, bookings []*domain.Booking) int {
	count := 0

	for _, booking := range bookings {
		if !booking.IsLive() {
			continue
		}
		if booking.Range().Overlaps(rng) {
			count++
		}
	}

	return count
}

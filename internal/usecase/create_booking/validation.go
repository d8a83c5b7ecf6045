package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
)

// validate один разделяемый инстанс; потокобезопасен и кэширует метаданные структур
var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldNames имена полей формы в ответе API
var fieldNames = map[string]string{
	"RoomID":          "room_id",
	"GuestName":       "guest_name",
	"GuestEmail":      "guest_email",
	"GuestPhone":      "guest_phone",
	"GuestCountry":    "guest_country",
	"GuestAddress":    "guest_address",
	"SpecialRequests": "special_requests",
	"NumberOfGuests":  "number_of_guests",
	"CheckIn":         "check_in_date",
	"CheckOut":        "check_out_date",
}

// validateRequest валидирует поля формы бронирования
// Выполняется ДО любых обращений к хранилищу: запрос без обязательных
// полей или с кривым email не должен доходить до проверки доступности
func validateRequest(req *Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := fieldNames[fe.StructField()]
		if !ok {
			name = fe.StructField()
		}
		fields = append(fields, FieldError{
			Field:  name,
			Reason: reasonForTag(fe),
		})
	}

	return &ValidationError{Fields: fields}
}

// reasonForTag переводит нарушенное правило в причину для ответа API
func reasonForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on rule %q", fe.Tag())
	}
}

// validateDates применяет датовую политику бронирования
// Повторяет проверки Availability Engine: прошлое, пустой интервал,
// окно предварительного бронирования
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

// initialStatus определяет стартовый статус бронирования из настроек
// Допустимы только pending и confirmed; всё остальное - дефолт
func initialStatus(value string) domain.BookingStatus {
	switch domain.BookingStatus(value) {
	case domain.StatusPending:
		return domain.StatusPending
	case domain.StatusConfirmed:
		return domain.StatusConfirmed
	default:
		return domain.DefaultBookingStatus
	}
}

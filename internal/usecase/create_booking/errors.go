package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation возвращается при некорректных входных данных формы
	// Конкретные поля доступны через errors.As с *ValidationError
	ErrValidation = errors.New("create_booking: invalid input data")

	// ErrRoomNotFound возвращается, когда номер не найден или неактивен
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrPastDate возвращается, когда дата заезда в прошлом
	ErrPastDate = errors.New("create_booking: check-in date is in the past")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("create_booking: check-out date must be after check-in date")

	// ErrAdvanceWindowExceeded возвращается, когда заезд дальше окна предварительного бронирования
	ErrAdvanceWindowExceeded = errors.New("create_booking: check-in date exceeds advance booking window")

	// ErrTooManyGuests возвращается, когда гостей больше вместимости номера
	ErrTooManyGuests = errors.New("create_booking: number of guests exceeds room capacity")

	// ErrRoomUnavailable возвращается, когда на интервал не осталось свободных номеров
	// Отличается от ошибок валидации: запрос был корректен, но инвентарь
	// разобрали - в том числе конкурирующим запросом между проверкой и записью
	ErrRoomUnavailable = errors.New("create_booking: no rooms available for the requested dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Детали хранилища наружу не отдаются, только логируются
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldError ошибка валидации конкретного поля формы
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError список ошибок валидации полей формы бронирования
type ValidationError struct {
	Fields []FieldError
}

// Error возвращает перечень полей с причинами
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

package check_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден или неактивен
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrPastDate возвращается, когда дата заезда в прошлом
	ErrPastDate = errors.New("check_availability: check-in date is in the past")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("check_availability: check-out date must be after check-in date")

	// ErrAdvanceWindowExceeded возвращается, когда заезд дальше окна предварительного бронирования
	ErrAdvanceWindowExceeded = errors.New("check_availability: check-in date exceeds advance booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)

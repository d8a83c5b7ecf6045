package create_booking

import (
	"errors"
	"net/http"

	"github.com/larespalmas/hotel-booking-service/internal/api/handlers"
	createBooking "github.com/larespalmas/hotel-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "форма бронирования заполнена некорректно"
	msgRoomNotFound       = "номер не найден"
	msgPastDate           = "дата заезда уже прошла"
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgAdvanceWindow      = "дата заезда выходит за окно предварительного бронирования"
	msgTooManyGuests      = "количество гостей превышает вместимость номера"
	msgRoomUnavailable    = "на выбранные даты свободных номеров не осталось"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createBooking.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrors(validationErr))

		case errors.Is(err, createBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past check-in date: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid date range: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrAdvanceWindowExceeded):
			h.logger.Warn("POST /bookings - Advance window exceeded: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgAdvanceWindow)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: room_id=%d, guests=%d", req.RoomID, req.NumberOfGuests)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%d, check_in=%s, check_out=%s",
				req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgRoomUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room_id=%d, status=%s",
		result.ID, result.RoomID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// fieldErrors конвертирует ошибки валидации формы в модель ответа
func fieldErrors(err *createBooking.ValidationError) []handlers.FieldErrorResponse {
	fields := make([]handlers.FieldErrorResponse, len(err.Fields))
	for i, f := range err.Fields {
		fields[i] = handlers.FieldErrorResponse{
			Field:  f.Field,
			Reason: f.Reason,
		}
	}
	return fields
}

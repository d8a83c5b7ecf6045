package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/larespalmas/hotel-booking-service/internal/api/handlers"
	checkAvailability "github.com/larespalmas/hotel-booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidRoomID = "некорректный идентификатор номера"
	msgInvalidDates  = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgRoomNotFound  = "номер не найден"
	msgPastDate      = "дата заезда уже прошла"
	msgInvalidRange  = "дата выезда должна быть позже даты заезда"
	msgAdvanceWindow = "дата заезда выходит за окно предварительного бронирования"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid room id: %v", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	checkIn, checkOut, err := parseQueryDates(query.Get("checkIn"), query.Get("checkOut"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		// Нарушения датовой политики - не ошибки клиента: форма запроса
		// корректна, просто на эти даты бронировать нельзя
		case errors.Is(err, checkAvailability.ErrPastDate):
			handlers.RespondJSON(w, http.StatusOK, unavailableResponse(roomID, checkIn, checkOut, msgPastDate))

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			handlers.RespondJSON(w, http.StatusOK, unavailableResponse(roomID, checkIn, checkOut, msgInvalidRange))

		case errors.Is(err, checkAvailability.ErrAdvanceWindowExceeded):
			handlers.RespondJSON(w, http.StatusOK, unavailableResponse(roomID, checkIn, checkOut, msgAdvanceWindow))

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/availability - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("GET /rooms/{roomId}/availability - Failed to check availability: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomId}/availability - room_id=%d, available=%t, remaining=%d",
		roomID, result.Available, result.RemainingInventory)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, roomID, checkIn, checkOut))
}

package get_room_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/larespalmas/hotel-booking-service/internal/api/handlers"
	"github.com/larespalmas/hotel-booking-service/internal/service/bookings"
)

const (
	msgInvalidRoomID = "некорректный идентификатор номера"
	msgInvalidQuery  = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/rooms/{roomId}/bookings?from=&to=&status=&includeReleased=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /admin/rooms/{roomId}/bookings - Invalid room id: %v", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	req, err := ParseQuery(roomID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/rooms/{roomId}/bookings - Invalid query: room_id=%d, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetRoomBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/rooms/{roomId}/bookings - Invalid filter: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /admin/rooms/{roomId}/bookings - Failed to list bookings: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/rooms/{roomId}/bookings - room_id=%d, total=%d", roomID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(roomID, result))
}

package get_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/larespalmas/hotel-booking-service/internal/api/handlers"
	"github.com/larespalmas/hotel-booking-service/internal/api/handlers/list_rooms"
	"github.com/larespalmas/hotel-booking-service/internal/service/rooms"
)

const (
	msgInvalidSlug  = "некорректный slug номера"
	msgRoomNotFound = "номер не найден"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		handlers.RespondBadRequest(w, msgInvalidSlug)
		return
	}

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{slug} - Room not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{slug} - Failed to get room: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{slug} - slug=%s, room_id=%d", slug, result.ID)
	handlers.RespondJSON(w, http.StatusOK, list_rooms.FromServiceRoom(result))
}

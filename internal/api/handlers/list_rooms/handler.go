package list_rooms

import (
	"net/http"

	"github.com/larespalmas/hotel-booking-service/internal/api/handlers"
	"github.com/larespalmas/hotel-booking-service/internal/api/middleware"
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

// Handle GET /api/v1/rooms
// Публичный каталог показывает только активные номера; администратор
// с X-Admin-ID видит и скрытые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := middleware.OptionalAdminID(r) == nil

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - total=%d, active_only=%t", result.Total, activeOnly)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

package get_settings

import (
	"net/http"

	"github.com/larespalmas/hotel-booking-service/internal/api/handlers"
)

// SettingsResponse HTTP response model
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	values, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings - Failed to list settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/settings - %d settings", len(values))
	handlers.RespondJSON(w, http.StatusOK, SettingsResponse{Settings: values})
}

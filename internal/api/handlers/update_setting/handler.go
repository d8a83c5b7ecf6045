package update_setting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/larespalmas/hotel-booking-service/internal/api/handlers"
	"github.com/larespalmas/hotel-booking-service/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownSetting     = "неизвестный ключ настройки"
	msgInvalidValue       = "некорректное значение настройки"
)

// UpdateSettingRequest HTTP request model
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// UpdateSettingResponse HTTP response model
type UpdateSettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
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

// Handle PUT /api/v1/admin/settings/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req UpdateSettingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), key, req.Value); err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownSetting):
			h.logger.Warn("PUT /admin/settings/{key} - Unknown setting: key=%s", key)
			handlers.RespondNotFound(w, msgUnknownSetting)

		case errors.Is(err, settings.ErrInvalidValue):
			h.logger.Warn("PUT /admin/settings/{key} - Invalid value: key=%s, error=%v", key, err)
			handlers.RespondBadRequest(w, msgInvalidValue)

		default:
			h.logger.Error("PUT /admin/settings/{key} - Failed to update setting: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/{key} - key=%s updated", key)
	handlers.RespondJSON(w, http.StatusOK, UpdateSettingResponse{Key: key, Value: req.Value})
}

package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/businesssettings"
	settingsModels "github.com/m04kA/Salon-BookingService/internal/service/businesssettings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные значения настроек"
)

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

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req settingsModels.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businesssettings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}

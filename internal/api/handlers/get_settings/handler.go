package get_settings

import (
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/settings
// Настройки нужны клиентской части для отрисовки календаря, поэтому эндпоинт публичный
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings := h.service.Get(r.Context())
	handlers.RespondJSON(w, http.StatusOK, settings)
}

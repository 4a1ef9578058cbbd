package list_services

import (
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/domain"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Клиенты видят только активные услуги; админ - весь каталог
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := middleware.UserTypeFromContext(r.Context()) != domain.UserTypeAdmin

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Fetched %d services, activeOnly=%v", len(result.Services), activeOnly)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_customers

import (
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

type Handler struct {
	service CustomersService
	logger  Logger
}

func NewHandler(service CustomersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/customers - Failed to list customers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/customers - Fetched %d customers", len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}

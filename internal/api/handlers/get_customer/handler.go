package get_customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/customers"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgCustomerNotFound  = "клиент не найден"
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

// Handle GET /api/v1/admin/customers/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/customers/{id} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("GET /admin/customers/{id} - Customer not found: id=%d", id)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("GET /admin/customers/{id} - Failed for id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/reservations"
	reservationModels "github.com/m04kA/Salon-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidStatus     = "некорректный статус записи"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations
// Query params: startDate, endDate, status, customerId, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &reservationModels.ListReservationsRequest{}
	query := r.URL.Query()

	if v := query.Get("startDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
	}

	if v := query.Get("endDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &date
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("customerId"); v != "" {
		customerID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid customerId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
			return
		}
		req.CustomerID = &customerID
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Fetched %d reservations", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

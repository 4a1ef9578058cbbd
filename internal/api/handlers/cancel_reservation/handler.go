package cancel_reservation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/reservations"
	reservationModels "github.com/m04kA/Salon-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "запись не найдена"
	msgAlreadyCancelled     = "запись уже отменена"
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

// Handle PATCH /api/v1/admin/reservations/{id}/cancel
// Тело с причиной отмены опционально
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req reservationModels.CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Already cancelled: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/cancel - Failed to cancel id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/cancel - Cancelled reservation id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	createReservation "github.com/m04kA/Salon-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные записи"
	msgDateInPast         = "дата записи уже прошла"
	msgDayOff             = "салон не работает в этот день"
	msgInvalidTimeSlot    = "время не попадает в сетку слотов"
	msgTooLateToBook      = "слишком поздно для записи на это время"
	msgTimeBlocked        = "это время закрыто для записи"
	msgSlotTaken          = "это время уже занято"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(middleware.UserTypeFromContext(r.Context()))
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrDayOff):
			h.logger.Warn("POST /reservations - Day off: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDayOff)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: services=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrTimeBlocked):
			h.logger.Warn("POST /reservations - Time blocked: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTimeBlocked)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Created reservation id=%d, customer id=%d", result.ID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

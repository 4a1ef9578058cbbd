package create_blocked_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/blockedtimes"
	blockedModels "github.com/m04kA/Salon-BookingService/internal/service/blockedtimes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBlockedTime = "некорректные параметры блокировки"
)

type Handler struct {
	service BlockedTimesService
	logger  Logger
}

func NewHandler(service BlockedTimesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req blockedModels.CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blockedtimes.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlockedTime)

		default:
			h.logger.Error("POST /admin/blocked-times - Failed to create blocked time: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-times - Created blocked time id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

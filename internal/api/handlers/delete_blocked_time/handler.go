package delete_blocked_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/blockedtimes"
)

const (
	msgInvalidBlockedTimeID = "некорректный ID блокировки"
	msgBlockedTimeNotFound  = "блокировка не найдена"
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

// Handle DELETE /api/v1/admin/blocked-times/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-times/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedTimeID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, blockedtimes.ErrBlockedTimeNotFound):
			h.logger.Warn("DELETE /admin/blocked-times/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgBlockedTimeNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-times/{id} - Failed for id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-times/{id} - Deleted id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

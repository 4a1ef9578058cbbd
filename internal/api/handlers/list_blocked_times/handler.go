package list_blocked_times

import (
	"net/http"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/admin/blocked-times
// Query params: from (optional, YYYY-MM-DD) - без него список не ограничен снизу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var from time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/blocked-times - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = parsed
	}

	result, err := h.service.List(r.Context(), from)
	if err != nil {
		h.logger.Error("GET /admin/blocked-times - Failed to list blocked times: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocked-times - Fetched %d blocked times", len(result.BlockedTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}

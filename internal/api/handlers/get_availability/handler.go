package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	getAvailability "github.com/m04kA/Salon-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), userType (optional)
// Роль admin учитывается только при успешной Basic авторизации,
// иначе заявленная роль понижается до customer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	userType := middleware.UserTypeFromContext(r.Context())
	if requested := r.URL.Query().Get("userType"); requested == string(domain.UserTypeAdmin) && userType != domain.UserTypeAdmin {
		h.logger.Warn("GET /availability - admin role requested without authorization, downgrading")
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, userType)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput), errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - date=%s, available=%d, booked=%d, blocked=%d",
		dateStr, len(result.Available), len(result.Booked), len(result.Blocked))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

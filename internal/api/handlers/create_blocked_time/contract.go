package create_blocked_time

import (
	"context"

	blockedModels "github.com/m04kA/Salon-BookingService/internal/service/blockedtimes/models"
)

type BlockedTimesService interface {
	Create(ctx context.Context, req *blockedModels.CreateBlockedTimeRequest) (*blockedModels.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_blocked_times

import (
	"context"
	"time"

	blockedModels "github.com/m04kA/Salon-BookingService/internal/service/blockedtimes/models"
)

type BlockedTimesService interface {
	List(ctx context.Context, from time.Time) (*blockedModels.BlockedTimeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package blockedtimes

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BlockedTimeRepository интерфейс репозитория блокировок времени
type BlockedTimeRepository interface {
	Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error)
	List(ctx context.Context, from time.Time) ([]*domain.BlockedTime, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

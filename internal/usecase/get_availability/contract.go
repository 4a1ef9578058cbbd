package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// SettingsProvider интерфейс кэша бизнес-настроек
type SettingsProvider interface {
	// Get возвращает актуальные настройки; ошибки хранилища скрыты за дефолтами
	Get(ctx context.Context, forceRefresh bool) *domain.BusinessSettings
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	// GetForRange получает активные записи, начинающиеся в интервале [from, to]
	GetForRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
}

// BlockedTimeRepository интерфейс репозитория блокировок времени
type BlockedTimeRepository interface {
	// GetForDate получает блокировки на дату, включая еженедельные по дню недели
	GetForDate(ctx context.Context, date time.Time, weekday time.Weekday) ([]*domain.BlockedTime, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

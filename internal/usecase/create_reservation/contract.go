package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// SettingsProvider интерфейс кэша бизнес-настроек
type SettingsProvider interface {
	Get(ctx context.Context, forceRefresh bool) *domain.BusinessSettings
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	// GetForRange получает активные записи в интервале; внутри транзакции строки блокируются (FOR UPDATE)
	GetForRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
}

// BlockedTimeRepository интерфейс репозитория блокировок времени
type BlockedTimeRepository interface {
	GetForDate(ctx context.Context, date time.Time, weekday time.Weekday) ([]*domain.BlockedTime, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Create(ctx context.Context, name, phone string) (*domain.Customer, error)
	IncrementVisitCount(ctx context.Context, id int64) (int, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.SalonService, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

package customers

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Coupon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

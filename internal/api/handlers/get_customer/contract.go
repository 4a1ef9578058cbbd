package get_customer

import (
	"context"

	customerModels "github.com/m04kA/Salon-BookingService/internal/service/customers/models"
)

type CustomersService interface {
	GetByID(ctx context.Context, id int64) (*customerModels.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

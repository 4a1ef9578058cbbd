package list_customers

import (
	"context"

	customerModels "github.com/m04kA/Salon-BookingService/internal/service/customers/models"
)

type CustomersService interface {
	List(ctx context.Context) (*customerModels.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

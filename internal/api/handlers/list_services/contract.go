package list_services

import (
	"context"

	catalogModels "github.com/m04kA/Salon-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, activeOnly bool) (*catalogModels.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_reservations

import (
	"context"

	reservationModels "github.com/m04kA/Salon-BookingService/internal/service/reservations/models"
)

type ReservationsService interface {
	List(ctx context.Context, req *reservationModels.ListReservationsRequest) (*reservationModels.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

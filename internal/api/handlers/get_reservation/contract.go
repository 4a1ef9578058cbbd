package get_reservation

import (
	"context"

	reservationModels "github.com/m04kA/Salon-BookingService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id int64) (*reservationModels.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

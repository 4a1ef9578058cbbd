package update_reservation_status

import (
	"context"

	reservationModels "github.com/m04kA/Salon-BookingService/internal/service/reservations/models"
)

type ReservationsService interface {
	UpdateStatus(ctx context.Context, id int64, req *reservationModels.UpdateStatusRequest) (*reservationModels.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reservations

import (
	"context"
	"errors"
	"fmt"

	customerRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/Salon-BookingService/internal/service/reservations/models"
)

// Service сервис для работы с записями (админка)
type Service struct {
	reservationRepo ReservationRepository
	customerRepo    CustomerRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	reservations ReservationRepository,
	customers CustomerRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservations,
		customerRepo:    customers,
		logger:          logger,
	}
}

// GetByID получает запись по ID, дополняя её данными клиента
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainReservation(reservation)

	// Данные клиента не критичны для ответа: при ошибке отдаем запись без них
	customer, err := s.customerRepo.GetByID(ctx, reservation.CustomerID)
	if err != nil {
		if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: failed to fetch customer id=%d: %v", reservation.CustomerID, err)
		}
		return resp, nil
	}
	resp.CustomerName = customer.Name
	resp.CustomerPhone = customer.Phone

	return resp, nil
}

// List получает записи с фильтрацией по периоду, статусу и клиенту
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, includeInactive=%v", req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет запись; повторная отмена запрещена
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d is in status %s", id, reservation.Status)
		return nil, ErrAlreadyCancelled
	}

	var reason string
	if req != nil && req.CancellationReason != nil {
		reason = *req.CancellationReason
	}

	if err := s.reservationRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return s.GetByID(ctx, id)
}

// UpdateStatus переводит запись в новый статус
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%d -> %s", id, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: failed for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

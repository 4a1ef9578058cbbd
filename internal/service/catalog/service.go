package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(services ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: services,
		logger:      logger,
	}
}

// List возвращает услуги каталога; клиентам показываются только активные
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Create добавляет услугу в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%q", req.Name)

	if err := validateService(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.serviceRepo.Create(ctx, &domain.SalonService{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          active,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу каталога
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%d", id)

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyTo(service)

	if err := validateService(service.Name, service.Price, service.DurationMinutes); err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу из каталога
// Записи хранят имена и цены денормализованно, история не страдает
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateService(name string, price float64, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	return nil
}

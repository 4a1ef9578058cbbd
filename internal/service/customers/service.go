package customers

import (
	"context"
	"errors"
	"fmt"

	customerRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/customer"
	"github.com/m04kA/Salon-BookingService/internal/service/customers/models"
)

// Service сервис для работы с клиентами (админка)
type Service struct {
	customerRepo CustomerRepository
	couponRepo   CouponRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customers CustomerRepository, coupons CouponRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customers,
		couponRepo:   coupons,
		logger:       logger,
	}
}

// List возвращает всех клиентов салона
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCustomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomerList(customers), nil
}

// GetByID возвращает клиента вместе с его купонами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetCustomer: id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetCustomer: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainCustomer(customer)

	coupons, err := s.couponRepo.GetByCustomerID(ctx, id)
	if err != nil {
		// Купоны не критичны для ответа
		s.logger.Warn("GetCustomer: failed to fetch coupons for id=%d: %v", id, err)
		return resp, nil
	}
	resp.Coupons = models.FromDomainCoupons(coupons)

	return resp, nil
}

package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// CreateServiceRequest запрос на добавление услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Active          *bool   `json:"active,omitempty"` // По умолчанию услуга активна
}

// UpdateServiceRequest запрос на обновление услуги
// Поля опциональны: отсутствующие остаются без изменений
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// ApplyTo накладывает заданные поля запроса на услугу
func (r *UpdateServiceRequest) ApplyTo(service *domain.SalonService) {
	if r.Name != nil {
		service.Name = *r.Name
	}
	if r.Price != nil {
		service.Price = *r.Price
	}
	if r.DurationMinutes != nil {
		service.DurationMinutes = *r.DurationMinutes
	}
	if r.Active != nil {
		service.Active = *r.Active
	}
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.SalonService) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.SalonService) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}

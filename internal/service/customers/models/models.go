package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// CouponResponse купон клиента
type CouponResponse struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discountPercent"`
	MilestoneVisit  int       `json:"milestoneVisit"`
	IssuedAt        time.Time `json:"issuedAt"`
	UsedAt          *string   `json:"usedAt,omitempty"` // ISO 8601
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Phone      string           `json:"phone"`
	VisitCount int              `json:"visitCount"`
	Coupons    []CouponResponse `json:"coupons,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		VisitCount: c.VisitCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, *FromDomainCustomer(c))
	}
	return resp
}

// FromDomainCoupons конвертирует купоны в DTO
func FromDomainCoupons(coupons []*domain.Coupon) []CouponResponse {
	result := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		item := CouponResponse{
			ID:              c.ID,
			Code:            c.Code,
			DiscountPercent: c.DiscountPercent,
			MilestoneVisit:  c.MilestoneVisit,
			IssuedAt:        c.IssuedAt,
		}
		if c.UsedAt != nil {
			item.UsedAt = ptr.Ptr(c.UsedAt.Format(time.RFC3339))
		}
		result = append(result, item)
	}
	return result
}

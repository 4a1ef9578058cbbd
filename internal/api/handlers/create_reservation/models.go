package create_reservation

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	createReservation "github.com/m04kA/Salon-BookingService/internal/usecase/create_reservation"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`      // "2025-10-15"
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       *string `json:"endTime,omitempty"`
	ServiceIDs    []int64 `json:"serviceIds"`
	Notes         *string `json:"notes,omitempty"`
}

// CouponPayload выданный купон в ответе
type CouponPayload struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	MilestoneVisit  int    `json:"milestoneVisit"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceIDs      []int64 `json:"serviceIds"`
	ServiceNames    string  `json:"serviceNames"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`

	VisitCount int            `json:"visitCount"`
	Coupon     *CouponPayload `json:"coupon,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateReservationRequest) ToUseCaseRequest(userType domain.UserType) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createReservation.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     types.TimeString(r.StartTime),
		ServiceIDs:    r.ServiceIDs,
		Notes:         r.Notes,
		UserType:      userType,
	}

	if r.EndTime != nil {
		end := types.TimeString(*r.EndTime)
		req.EndTime = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	out := &CreateReservationResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceIDs:      resp.ServiceIDs,
		ServiceNames:    resp.ServiceNames,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		VisitCount:      resp.VisitCount,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}

	if resp.Coupon != nil {
		out.Coupon = &CouponPayload{
			Code:            resp.Coupon.Code,
			DiscountPercent: resp.Coupon.DiscountPercent,
			MilestoneVisit:  resp.Coupon.MilestoneVisit,
		}
	}

	return out
}

package models

import (
	"errors"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе записи
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос списка записей с фильтрацией (админка)
type ListReservationsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	CustomerID      *int64     `json:"customerId,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		CustomerID:      r.CustomerID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelReservationRequest запрос на отмену записи
type CancelReservationRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse ответ с данными записи
type ReservationResponse struct {
	ID              int64  `json:"id"`
	CustomerID      int64  `json:"customerId"`
	BookingDate     string `json:"bookingDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`   // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	ServiceIDs   []int64 `json:"serviceIds"`
	ServiceNames string  `json:"serviceNames"`
	TotalPrice   float64 `json:"totalPrice"`
	Notes        *string `json:"notes,omitempty"`

	// Данные клиента (заполняются при выборке одной записи)
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком записей
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// ToDomainStatus конвертирует строку в domain статус
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return domain.ReservationStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		BookingDate:        r.BookingDate.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		DurationMinutes:    r.DurationMinutes,
		Status:             string(r.Status),
		ServiceIDs:         r.ServiceIDs,
		ServiceNames:       r.ServiceNames,
		TotalPrice:         r.TotalPrice,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(r.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}

	return resp
}

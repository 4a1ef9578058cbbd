package domain

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a salon appointment
type Reservation struct {
	ID              int64
	CustomerID      int64
	BookingDate     time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала в таймзоне салона
	StartAt         time.Time        // Абсолютный момент начала (хранится в UTC)
	DurationMinutes int
	Status          ReservationStatus

	ServiceIDs []int64

	// Denormalized data for history
	ServiceNames string
	TotalPrice   float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// EndAt returns the absolute end instant of the reservation
func (r *Reservation) EndAt() time.Time {
	return r.StartAt.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the reservation interval [StartAt, EndAt) overlaps
// [start, start+duration). Границы, которые только соприкасаются, пересечением не считаются
func (r *Reservation) Overlaps(start time.Time, durationMinutes int) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return r.StartAt.Before(end) && r.EndAt().After(start)
}

// ReservationsFilter фильтр для получения записей (админка)
type ReservationsFilter struct {
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	CustomerID      *int64             // Фильтр по клиенту (опционально)
	IncludeInactive bool               // Включать ли отменённые записи
}

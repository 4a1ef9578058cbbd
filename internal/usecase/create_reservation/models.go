package create_reservation

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName  string
	CustomerPhone string
	Date          time.Time         // Дата записи (без времени)
	StartTime     types.TimeString  // Время начала слота, например "10:00"
	EndTime       *types.TimeString // Опционально: явное время конца вместо длительности слота
	ServiceIDs    []int64           // Выбранные услуги каталога
	Notes         *string
	UserType      domain.UserType // Админ может записывать на заблокированное время
}

// IssuedCoupon купон, выданный при создании записи на юбилейный визит
type IssuedCoupon struct {
	Code            string
	DiscountPercent int
	MilestoneVisit  int
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	CustomerID      int64
	CustomerName    string
	CustomerPhone   string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	ServiceIDs   []int64
	ServiceNames string
	TotalPrice   float64
	Notes        *string

	VisitCount int           // Счетчик визитов клиента после этой записи
	Coupon     *IssuedCoupon // nil, если визит не юбилейный

	CreatedAt time.Time
	UpdatedAt time.Time
}

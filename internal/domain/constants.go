package domain

import "time"

// UserType роль вызывающей стороны при запросе доступности
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeAdmin    UserType = "admin"
)

// Valid returns true for known user types
func (u UserType) Valid() bool {
	return u == UserTypeCustomer || u == UserTypeAdmin
}

// Default business settings
// Используются при первом запуске и при недоступности хранилища настроек
const (
	DefaultTimezone             = "Europe/Moscow"
	DefaultOpenTime             = "10:00"
	DefaultCloseTime            = "20:00"
	DefaultSlotDurationMinutes  = 30
	DefaultMinBookingGapMinutes = 0
	DefaultLunchBreakStart      = "13:00"
	DefaultLunchBreakEnd        = "14:00"
	DefaultWeekStartDay         = time.Monday
)

// DefaultWorkingDays рабочие дни по умолчанию: понедельник - суббота
var DefaultWorkingDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 120
	MaxBookingGapMinutes   = 10080 // 1 неделя
	MaxNotesLength         = 500
	MaxReasonLength        = 500
	CouponVisitMilestone   = 5 // Купон за каждый N-й визит
	CouponDiscountPercent  = 10
)

// AllowedSlotDurations допустимые значения длительности слота (минуты)
var AllowedSlotDurations = []int{15, 20, 30, 45, 60, 90, 120}

// AllowedWeekStartDays допустимые дни начала недели для календаря админки
var AllowedWeekStartDays = []time.Weekday{time.Sunday, time.Monday, time.Saturday}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

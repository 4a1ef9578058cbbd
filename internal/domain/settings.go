package domain

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// LunchBreak обеденный перерыв салона
// When enabled, slots whose start falls within [Start, End) are not offered
type LunchBreak struct {
	Enabled bool
	Start   types.TimeString
	End     types.TimeString
}

// BusinessSettings represents the salon-wide booking configuration
// Единственный экземпляр, хранится в БД как key/value, кэшируется с TTL
type BusinessSettings struct {
	Timezone             string // IANA идентификатор, например "Europe/Moscow"
	OpenTime             types.TimeString
	CloseTime            types.TimeString
	WorkingDays          []time.Weekday // Непустое множество, 0=Sunday..6=Saturday
	SlotDurationMinutes  int
	MinBookingGapMinutes int
	LunchBreak           LunchBreak
	WeekStartDay         time.Weekday // Для календаря в админке: Sunday, Monday или Saturday
}

// IsWorkingDay returns true if the salon accepts bookings on the given weekday
func (s *BusinessSettings) IsWorkingDay(day time.Weekday) bool {
	for _, d := range s.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// Clone возвращает независимую копию настроек
// Кэш всегда отдает копию либо заменяет значение целиком, поля никогда не мутируются на месте
func (s *BusinessSettings) Clone() *BusinessSettings {
	clone := *s
	clone.WorkingDays = make([]time.Weekday, len(s.WorkingDays))
	copy(clone.WorkingDays, s.WorkingDays)
	return &clone
}

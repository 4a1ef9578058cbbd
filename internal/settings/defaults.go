package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Ключи настроек в хранилище business_settings
const (
	KeyTimezone          = "timezone"
	KeyOpenTime          = "open_time"
	KeyCloseTime         = "close_time"
	KeyWorkingDays       = "working_days" // CSV дней недели: "1,2,3,4,5,6"
	KeySlotDuration      = "slot_duration_minutes"
	KeyMinBookingGap     = "min_booking_gap_minutes"
	KeyLunchBreakEnabled = "lunch_break_enabled"
	KeyLunchBreakStart   = "lunch_break_start"
	KeyLunchBreakEnd     = "lunch_break_end"
	KeyWeekStartDay      = "week_start_day"
)

// Defaults возвращает настройки по умолчанию
// Используются при первом чтении пустого хранилища и как fallback при его недоступности
func Defaults() *domain.BusinessSettings {
	working := make([]time.Weekday, len(domain.DefaultWorkingDays))
	copy(working, domain.DefaultWorkingDays)

	return &domain.BusinessSettings{
		Timezone:             domain.DefaultTimezone,
		OpenTime:             types.TimeString(domain.DefaultOpenTime),
		CloseTime:            types.TimeString(domain.DefaultCloseTime),
		WorkingDays:          working,
		SlotDurationMinutes:  domain.DefaultSlotDurationMinutes,
		MinBookingGapMinutes: domain.DefaultMinBookingGapMinutes,
		LunchBreak: domain.LunchBreak{
			Enabled: false,
			Start:   types.TimeString(domain.DefaultLunchBreakStart),
			End:     types.TimeString(domain.DefaultLunchBreakEnd),
		},
		WeekStartDay: domain.DefaultWeekStartDay,
	}
}

// FromStoredValues собирает настройки из key/value значений хранилища
// Каждый отсутствующий или некорректный ключ заменяется значением по умолчанию по отдельности
func FromStoredValues(values map[string]string) *domain.BusinessSettings {
	s := Defaults()
	if values == nil {
		return s
	}

	if v, ok := values[KeyTimezone]; ok && v != "" {
		s.Timezone = v
	}
	if v, ok := parseTime(values, KeyOpenTime); ok {
		s.OpenTime = v
	}
	if v, ok := parseTime(values, KeyCloseTime); ok {
		s.CloseTime = v
	}
	if v, ok := parseWorkingDays(values[KeyWorkingDays]); ok {
		s.WorkingDays = v
	}
	if v, ok := parseInt(values, KeySlotDuration); ok && v > 0 {
		s.SlotDurationMinutes = v
	}
	if v, ok := parseInt(values, KeyMinBookingGap); ok && v >= 0 {
		s.MinBookingGapMinutes = v
	}
	if v, ok := values[KeyLunchBreakEnabled]; ok {
		s.LunchBreak.Enabled = v == "true"
	}
	if v, ok := parseTime(values, KeyLunchBreakStart); ok {
		s.LunchBreak.Start = v
	}
	if v, ok := parseTime(values, KeyLunchBreakEnd); ok {
		s.LunchBreak.End = v
	}
	if v, ok := parseInt(values, KeyWeekStartDay); ok && v >= 0 && v <= 6 {
		s.WeekStartDay = time.Weekday(v)
	}

	return s
}

// ToStoredValues кодирует настройки в key/value представление для хранилища
func ToStoredValues(s *domain.BusinessSettings) map[string]string {
	days := make([]string, len(s.WorkingDays))
	for i, d := range s.WorkingDays {
		days[i] = strconv.Itoa(int(d))
	}

	return map[string]string{
		KeyTimezone:          s.Timezone,
		KeyOpenTime:          s.OpenTime.String(),
		KeyCloseTime:         s.CloseTime.String(),
		KeyWorkingDays:       strings.Join(days, ","),
		KeySlotDuration:      strconv.Itoa(s.SlotDurationMinutes),
		KeyMinBookingGap:     strconv.Itoa(s.MinBookingGapMinutes),
		KeyLunchBreakEnabled: strconv.FormatBool(s.LunchBreak.Enabled),
		KeyLunchBreakStart:   s.LunchBreak.Start.String(),
		KeyLunchBreakEnd:     s.LunchBreak.End.String(),
		KeyWeekStartDay:      strconv.Itoa(int(s.WeekStartDay)),
	}
}

func parseTime(values map[string]string, key string) (types.TimeString, bool) {
	raw, ok := values[key]
	if !ok {
		return "", false
	}
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", false
	}
	return ts, true
}

func parseInt(values map[string]string, key string) (int, bool) {
	raw, ok := values[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseWorkingDays(raw string) ([]time.Weekday, bool) {
	if raw == "" {
		return nil, false
	}

	parts := strings.Split(raw, ",")
	days := make([]time.Weekday, 0, len(parts))
	seen := make(map[time.Weekday]bool)

	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 6 {
			return nil, false
		}
		d := time.Weekday(v)
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}

	if len(days) == 0 {
		return nil, false
	}
	return days, true
}

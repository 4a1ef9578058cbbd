package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// LunchBreakPayload обеденный перерыв в настройках
type LunchBreakPayload struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // "13:00"
	End     string `json:"end"`   // "14:00"
}

// SettingsResponse ответ с текущими настройками салона
type SettingsResponse struct {
	Timezone             string            `json:"timezone"`
	OpenTime             string            `json:"openTime"`  // "10:00"
	CloseTime            string            `json:"closeTime"` // "20:00"
	WorkingDays          []int             `json:"workingDays"` // 0=Sunday..6=Saturday
	SlotDurationMinutes  int               `json:"slotDurationMinutes"`
	MinBookingGapMinutes int               `json:"minBookingGapMinutes"`
	LunchBreak           LunchBreakPayload `json:"lunchBreak"`
	WeekStartDay         int               `json:"weekStartDay"`
}

// UpdateSettingsRequest запрос на обновление настроек
// Поля опциональны: отсутствующие остаются без изменений
type UpdateSettingsRequest struct {
	Timezone             *string            `json:"timezone,omitempty"`
	OpenTime             *string            `json:"openTime,omitempty"`
	CloseTime            *string            `json:"closeTime,omitempty"`
	WorkingDays          *[]int             `json:"workingDays,omitempty"`
	SlotDurationMinutes  *int               `json:"slotDurationMinutes,omitempty"`
	MinBookingGapMinutes *int               `json:"minBookingGapMinutes,omitempty"`
	LunchBreak           *LunchBreakPayload `json:"lunchBreak,omitempty"`
	WeekStartDay         *int               `json:"weekStartDay,omitempty"`
}

// ApplyTo накладывает заданные поля запроса на копию текущих настроек
func (r *UpdateSettingsRequest) ApplyTo(current *domain.BusinessSettings) *domain.BusinessSettings {
	next := current.Clone()

	if r.Timezone != nil {
		next.Timezone = *r.Timezone
	}
	if r.OpenTime != nil {
		next.OpenTime = types.TimeString(*r.OpenTime)
	}
	if r.CloseTime != nil {
		next.CloseTime = types.TimeString(*r.CloseTime)
	}
	if r.WorkingDays != nil {
		days := make([]time.Weekday, 0, len(*r.WorkingDays))
		for _, d := range *r.WorkingDays {
			days = append(days, time.Weekday(d))
		}
		next.WorkingDays = days
	}
	if r.SlotDurationMinutes != nil {
		next.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.MinBookingGapMinutes != nil {
		next.MinBookingGapMinutes = *r.MinBookingGapMinutes
	}
	if r.LunchBreak != nil {
		next.LunchBreak = domain.LunchBreak{
			Enabled: r.LunchBreak.Enabled,
			Start:   types.TimeString(r.LunchBreak.Start),
			End:     types.TimeString(r.LunchBreak.End),
		}
	}
	if r.WeekStartDay != nil {
		next.WeekStartDay = time.Weekday(*r.WeekStartDay)
	}

	return next
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.BusinessSettings) *SettingsResponse {
	days := make([]int, 0, len(s.WorkingDays))
	for _, d := range s.WorkingDays {
		days = append(days, int(d))
	}

	return &SettingsResponse{
		Timezone:             s.Timezone,
		OpenTime:             s.OpenTime.String(),
		CloseTime:            s.CloseTime.String(),
		WorkingDays:          days,
		SlotDurationMinutes:  s.SlotDurationMinutes,
		MinBookingGapMinutes: s.MinBookingGapMinutes,
		LunchBreak: LunchBreakPayload{
			Enabled: s.LunchBreak.Enabled,
			Start:   s.LunchBreak.Start.String(),
			End:     s.LunchBreak.End.String(),
		},
		WeekStartDay: int(s.WeekStartDay),
	}
}

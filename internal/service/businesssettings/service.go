package businesssettings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/businesssettings/models"
	"github.com/m04kA/Salon-BookingService/internal/settings"
)

// Service сервис для работы с настройками салона
type Service struct {
	store  SettingsStore
	cache  SettingsCache
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(store SettingsStore, cache SettingsCache, logger Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Get возвращает текущие настройки салона
func (s *Service) Get(ctx context.Context) *models.SettingsResponse {
	return models.FromDomainSettings(s.cache.Get(ctx, false))
}

// Update накладывает изменения на текущие настройки, валидирует результат
// и сохраняет его; кэш сбрасывается и сразу перечитывается, чтобы следующий
// запрос доступности уже считал по новым настройкам
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: applying settings update")

	current := s.cache.Get(ctx, false)
	next := req.ApplyTo(current)

	if err := validateSettings(next); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, err
	}

	if err := s.store.Upsert(ctx, settings.ToStoredValues(next)); err != nil {
		s.logger.Error("UpdateSettings: failed to store settings: %v", err)
		return nil, fmt.Errorf("%w: failed to store settings: %v", ErrInternal, err)
	}

	s.cache.Invalidate()
	fresh := s.cache.Get(ctx, true)

	s.logger.Info("UpdateSettings: settings updated, tz=%s, hours=%s-%s, slot=%dm",
		fresh.Timezone, fresh.OpenTime, fresh.CloseTime, fresh.SlotDurationMinutes)

	return models.FromDomainSettings(fresh), nil
}

// validateSettings проверяет согласованность полного набора настроек
func validateSettings(s *domain.BusinessSettings) error {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, s.Timezone)
	}

	if err := s.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}
	if err := s.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}
	if !s.OpenTime.IsBefore(s.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if !allowedSlotDuration(s.SlotDurationMinutes) {
		return fmt.Errorf("%w: slotDurationMinutes must be one of %v", ErrInvalidInput, domain.AllowedSlotDurations)
	}

	if s.MinBookingGapMinutes < 0 || s.MinBookingGapMinutes > domain.MaxBookingGapMinutes {
		return fmt.Errorf("%w: minBookingGapMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBookingGapMinutes)
	}

	if len(s.WorkingDays) == 0 {
		return fmt.Errorf("%w: workingDays must not be empty", ErrInvalidInput)
	}
	seen := make(map[time.Weekday]bool)
	for _, d := range s.WorkingDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: workingDays values must be between 0 and 6", ErrInvalidInput)
		}
		if seen[d] {
			return fmt.Errorf("%w: workingDays must not contain duplicates", ErrInvalidInput)
		}
		seen[d] = true
	}

	if s.LunchBreak.Enabled {
		if err := s.LunchBreak.Start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid lunchBreak.start: %v", ErrInvalidInput, err)
		}
		if err := s.LunchBreak.End.Validate(); err != nil {
			return fmt.Errorf("%w: invalid lunchBreak.end: %v", ErrInvalidInput, err)
		}
		if !s.LunchBreak.Start.IsBefore(s.LunchBreak.End) {
			return fmt.Errorf("%w: lunchBreak.start must be before lunchBreak.end", ErrInvalidInput)
		}
		if s.LunchBreak.Start.IsBefore(s.OpenTime) || s.LunchBreak.End.IsAfter(s.CloseTime) {
			return fmt.Errorf("%w: lunch break must fit within working hours", ErrInvalidInput)
		}
	}

	if !allowedWeekStart(s.WeekStartDay) {
		return fmt.Errorf("%w: weekStartDay must be one of %v", ErrInvalidInput, domain.AllowedWeekStartDays)
	}

	return nil
}

func allowedSlotDuration(minutes int) bool {
	for _, d := range domain.AllowedSlotDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

func allowedWeekStart(day time.Weekday) bool {
	for _, d := range domain.AllowedWeekStartDays {
		if d == day {
			return true
		}
	}
	return false
}

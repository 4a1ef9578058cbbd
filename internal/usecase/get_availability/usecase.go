package get_availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/timezone"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// UseCase use case расчета доступности слотов на день
type UseCase struct {
	settings        SettingsProvider
	reservationRepo ReservationRepository
	blockedRepo     BlockedTimeRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsProvider,
	reservationRepo ReservationRepository,
	blockedRepo BlockedTimeRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:        settings,
		reservationRepo: reservationRepo,
		blockedRepo:     blockedRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет расчет доступности: сетка слотов минус занятые и заблокированные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Настройки салона (из кэша, при недоступности хранилища - дефолты)
	settings := uc.settings.Get(ctx, false)
	norm := timezone.NewNormalizer(settings.Timezone, uc.logger)

	// Дата интерпретируется как календарный день в таймзоне салона
	y, m, d := req.Date.Date()
	businessDate := time.Date(y, m, d, 0, 0, 0, 0, norm.Location())

	uc.logger.Info("GetAvailability: date=%s, userType=%s, tz=%s",
		businessDate.Format(domain.DateFormat), req.UserType, norm.Name())

	// 3. Генерируем дневную сетку слотов и убираем обеденный перерыв
	grid, err := generateSlotGrid(settings.OpenTime, settings.CloseTime, settings.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}
	grid = removeLunchSlots(grid, settings.LunchBreak)

	resp := &Response{
		Date:                businessDate,
		AllSlots:            grid,
		Available:           []types.TimeString{},
		Booked:              []types.TimeString{},
		Blocked:             []types.TimeString{},
		Timezone:            norm.Name(),
		OpenTime:            settings.OpenTime,
		CloseTime:           settings.CloseTime,
		SlotDurationMinutes: settings.SlotDurationMinutes,
	}

	// 4. Нерабочий день: вся сетка уходит в Blocked, записи не читаем
	if !settings.IsWorkingDay(businessDate.Weekday()) {
		uc.logger.Info("GetAvailability: %s is a day off", businessDate.Format(domain.DateFormat))
		resp.DayOff = true
		resp.Blocked = grid
		return resp, nil
	}

	// 5. Занятые слоты: проекции начал активных записей на таймзону салона
	// Две записи с одним временем начала дают один занятый слот
	reservations, err := uc.reservationRepo.GetForRange(ctx, norm.StartOfDay(businessDate), norm.EndOfDay(businessDate))
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	bookedSet := make(map[types.TimeString]struct{})
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		bookedSet[types.NewTimeString(norm.ToBusinessTime(res.StartAt))] = struct{}{}
	}

	// 6. Заблокированные слоты; админ их видит как свободные, но занятые - нет
	blockedSet := make(map[types.TimeString]struct{})
	if req.UserType != domain.UserTypeAdmin {
		blocks, err := uc.blockedRepo.GetForDate(ctx, businessDate, businessDate.Weekday())
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get blocked times: %v", err)
			return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}
		blockedSet = expandBlockedTimes(grid, blocks)
	}

	// 7. Разбиваем сетку: занятый имеет приоритет над заблокированным
	now := uc.timeProvider.Now()
	sameDay := norm.IsSameBusinessDay(now, businessDate)

	var minAllowed types.TimeString
	cutoffPassed := false // Сдвиг now+gap вышел за полночь - сегодня слотов больше нет
	if sameDay {
		minAllowed, err = types.NewTimeString(norm.ToBusinessTime(now)).AddMinutes(settings.MinBookingGapMinutes)
		if err != nil {
			cutoffPassed = true
		}
	}

	for _, slot := range grid {
		if _, booked := bookedSet[slot]; booked {
			resp.Booked = append(resp.Booked, slot)
			continue
		}
		if _, blocked := blockedSet[slot]; blocked {
			resp.Blocked = append(resp.Blocked, slot)
			continue
		}
		// Сегодняшние слоты предлагаем только строго позже now + минимальный зазор
		if sameDay && (cutoffPassed || !slot.IsAfter(minAllowed)) {
			continue
		}
		resp.Available = append(resp.Available, slot)
	}

	// Занятые вне сетки (например, после смены настроек) тоже показываем
	for booked := range bookedSet {
		if !containsSlot(grid, booked) {
			resp.Booked = append(resp.Booked, booked)
		}
	}
	sort.Slice(resp.Booked, func(i, j int) bool {
		return resp.Booked[i].IsBefore(resp.Booked[j])
	})

	uc.logger.Info("GetAvailability: date=%s available=%d booked=%d blocked=%d",
		businessDate.Format(domain.DateFormat), len(resp.Available), len(resp.Booked), len(resp.Blocked))

	return resp, nil
}

func containsSlot(grid []types.TimeString, slot types.TimeString) bool {
	for _, s := range grid {
		if s == slot {
			return true
		}
	}
	return false
}

package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

const minPhoneLength = 5

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.CustomerPhone)) < minPhoneLength {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
		if !req.EndTime.IsAfter(req.StartTime) {
			return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
		}
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if !req.UserType.Valid() {
		return fmt.Errorf("%w: unknown user type %q", ErrInvalidInput, req.UserType)
	}

	return nil
}

// validateSlotOnGrid проверяет, что время начала попадает в дневную сетку слотов
// Сетка строится от открытия с шагом slotDuration, слоты обеда исключены
func validateSlotOnGrid(startTime types.TimeString, settings *domain.BusinessSettings) error {
	current := settings.OpenTime

	for current.IsBefore(settings.CloseTime) {
		inLunch := settings.LunchBreak.Enabled &&
			!current.IsBefore(settings.LunchBreak.Start) &&
			current.IsBefore(settings.LunchBreak.End)

		if current == startTime {
			if inLunch {
				return fmt.Errorf("%w: %s falls into the lunch break", ErrInvalidTimeSlot, startTime)
			}
			return nil
		}

		next, err := current.AddMinutes(settings.SlotDurationMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return fmt.Errorf("%w: %s is outside working hours or off the grid", ErrInvalidTimeSlot, startTime)
}

// validateBookingTime проверяет минимальный зазор до начала для записей на сегодня
// Слот должен начинаться строго позже now + minBookingGapMinutes
func validateBookingTime(startTime types.TimeString, nowBusiness time.Time, sameDay bool, minGapMinutes int) error {
	if !sameDay {
		return nil
	}

	minAllowed, err := types.NewTimeString(nowBusiness).AddMinutes(minGapMinutes)
	if err != nil {
		// now + зазор за полночью: сегодня записаться уже нельзя
		return fmt.Errorf("%w: no slots left today", ErrTooLateToBook)
	}

	if !startTime.IsAfter(minAllowed) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minGapMinutes)
	}

	return nil
}

// isBlockedInterval проверяет, что интервал записи [startTime, startTime+duration)
// пересекается хотя бы с одной блокировкой
func isBlockedInterval(startTime types.TimeString, durationMinutes int, blocks []*domain.BlockedTime) bool {
	startMin, err := startTime.Minutes()
	if err != nil {
		return false
	}
	endMin := startMin + durationMinutes

	for _, block := range blocks {
		if block.IsWholeDay() {
			return true
		}

		blockStart, err := block.StartTime.Minutes()
		if err != nil {
			continue
		}
		blockEnd, err := block.EndTime.Minutes()
		if err != nil {
			continue
		}

		if startMin < blockEnd && endMin > blockStart {
			return true
		}
	}

	return false
}

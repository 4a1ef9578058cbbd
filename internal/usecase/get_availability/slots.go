package get_availability

import (
	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// generateSlotGrid генерирует дневную сетку слотов с фиксированным шагом slotDuration
// Слот входит в сетку, пока его НАЧАЛО строго раньше времени закрытия:
// последний слот может заканчиваться ровно в closeTime, но не начинаться в него
func generateSlotGrid(openTime, closeTime types.TimeString, slotDuration int) ([]types.TimeString, error) {
	grid := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		grid = append(grid, current)

		next, err := current.AddMinutes(slotDuration)
		if err != nil {
			// Шаг вышел за полночь - сетка закончилась
			break
		}
		current = next
	}

	return grid, nil
}

// removeLunchSlots убирает из сетки слоты, начинающиеся внутри обеденного перерыва [start, end)
func removeLunchSlots(grid []types.TimeString, lunch domain.LunchBreak) []types.TimeString {
	if !lunch.Enabled {
		return grid
	}

	result := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if !slot.IsBefore(lunch.Start) && slot.IsBefore(lunch.End) {
			continue
		}
		result = append(result, slot)
	}
	return result
}

// expandBlockedTimes раскрывает блокировки в множество заблокированных слотов сетки
// Блокировка на весь день покрывает всю сетку; интервальная - слоты, попадающие в [start, end)
func expandBlockedTimes(grid []types.TimeString, blocks []*domain.BlockedTime) map[types.TimeString]struct{} {
	blocked := make(map[types.TimeString]struct{})

	for _, block := range blocks {
		if block.IsWholeDay() {
			for _, slot := range grid {
				blocked[slot] = struct{}{}
			}
			return blocked
		}

		for _, slot := range grid {
			if block.Covers(slot) {
				blocked[slot] = struct{}{}
			}
		}
	}

	return blocked
}

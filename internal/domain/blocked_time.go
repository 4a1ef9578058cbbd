package domain

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// BlockedTime represents an admin-declared exclusion window
// StartTime и EndTime либо оба заданы (интервал внутри дня), либо оба nil (блокировка всего дня)
type BlockedTime struct {
	ID          int64
	BlockDate   time.Time
	StartTime   *types.TimeString
	EndTime     *types.TimeString
	Reason      *string
	IsRecurring bool // Еженедельное повторение по дню недели BlockDate
	CreatedAt   time.Time
}

// IsWholeDay returns true if the block suppresses the entire day
func (b *BlockedTime) IsWholeDay() bool {
	return b.StartTime == nil && b.EndTime == nil
}

// Covers reports whether a slot starting at slot falls within the block interval [StartTime, EndTime)
// Для блокировки всего дня возвращает true для любого слота
func (b *BlockedTime) Covers(slot types.TimeString) bool {
	if b.IsWholeDay() {
		return true
	}
	return !slot.IsBefore(*b.StartTime) && slot.IsBefore(*b.EndTime)
}

package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// CreateBlockedTimeRequest запрос на блокировку времени
// Без startTime/endTime блокируется весь день
type CreateBlockedTimeRequest struct {
	BlockDate   string  `json:"blockDate"` // "2025-10-15"
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	IsRecurring bool    `json:"isRecurring,omitempty"` // Повторять еженедельно по дню недели
}

// BlockedTimeResponse ответ с данными блокировки
type BlockedTimeResponse struct {
	ID          int64     `json:"id"`
	BlockDate   string    `json:"blockDate"`
	StartTime   *string   `json:"startTime,omitempty"`
	EndTime     *string   `json:"endTime,omitempty"`
	Reason      *string   `json:"reason,omitempty"`
	IsRecurring bool      `json:"isRecurring"`
	WholeDay    bool      `json:"wholeDay"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BlockedTimeListResponse ответ со списком блокировок
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
}

// FromDomainBlockedTime конвертирует domain модель в DTO
func FromDomainBlockedTime(b *domain.BlockedTime) *BlockedTimeResponse {
	if b == nil {
		return nil
	}

	resp := &BlockedTimeResponse{
		ID:          b.ID,
		BlockDate:   b.BlockDate.Format(domain.DateFormat),
		Reason:      b.Reason,
		IsRecurring: b.IsRecurring,
		WholeDay:    b.IsWholeDay(),
		CreatedAt:   b.CreatedAt,
	}

	if b.StartTime != nil {
		resp.StartTime = ptr.Ptr(b.StartTime.String())
	}
	if b.EndTime != nil {
		resp.EndTime = ptr.Ptr(b.EndTime.String())
	}

	return resp
}

// FromDomainBlockedTimeList конвертирует список domain моделей в DTO
func FromDomainBlockedTimeList(blocks []*domain.BlockedTime) *BlockedTimeListResponse {
	resp := &BlockedTimeListResponse{
		BlockedTimes: make([]BlockedTimeResponse, 0, len(blocks)),
	}
	for _, b := range blocks {
		resp.BlockedTimes = append(resp.BlockedTimes, *FromDomainBlockedTime(b))
	}
	return resp
}

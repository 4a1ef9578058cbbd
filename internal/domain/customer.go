package domain

import "time"

// Customer represents a salon client, identified by phone number
type Customer struct {
	ID         int64
	Name       string
	Phone      string
	VisitCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Coupon скидочный купон, выдается автоматически на каждый пятый визит
type Coupon struct {
	ID              int64
	CustomerID      int64
	Code            string // UUID
	DiscountPercent int
	MilestoneVisit  int // Номер визита, за который выдан купон
	IssuedAt        time.Time
	UsedAt          *time.Time
}

// IsUsed returns true if the coupon has already been redeemed
func (c *Coupon) IsUsed() bool {
	return c.UsedAt != nil
}

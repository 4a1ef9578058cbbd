package domain

import "time"

// SalonService represents an entry of the salon's service catalog
type SalonService struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

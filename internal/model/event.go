package model

import "time"

// Event is a single tracked interval in the owner's calendar. Only completed
// events contribute to the aggregate buckets.
type Event struct {
	ID              uint  `gorm:"primaryKey"`
	UserID          uint  `gorm:"index"`
	LabelID         *uint `gorm:"index"`
	Title           string
	Description     string
	StartAt         time.Time
	DurationMinutes int
	IsCompleted     bool `gorm:"default:false"`
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

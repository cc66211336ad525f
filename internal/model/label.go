package model

import "time"

// Label groups tracked events by activity (work, sport, reading, etc.).
type Label struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_user_label_name,priority:1"`
	Name      string `gorm:"uniqueIndex:idx_user_label_name,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Events    []Event `gorm:"foreignKey:LabelID"`
}

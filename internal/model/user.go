package model

import "time"

// User stores Telegram user metadata plus the IANA timezone all of the user's
// calendar math runs in.
type User struct {
	ID         uint  `gorm:"primaryKey"`
	TelegramID int64 `gorm:"uniqueIndex"`
	FirstName  string
	LastName   string
	Username   string
	Timezone   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Location resolves the user's configured timezone.
func (u User) Location() (*time.Location, error) {
	return time.LoadLocation(u.Timezone)
}

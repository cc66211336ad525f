package model

import (
	"time"

	"time-tracker/internal/timeslice"
)

// Bucket is one aggregate row: total tracked minutes for a single
// (user, label, granularity, period) combination. Rows are created lazily on
// first contribution and never deleted by the aggregation engine.
//
// LabelName is a denormalized display-name cache refreshed opportunistically on
// writes; it makes listing buckets joinless but is never used for lookups or
// equality.
type Bucket struct {
	ID              uint                 `gorm:"primaryKey"`
	UserID          uint                 `gorm:"uniqueIndex:idx_bucket_coord,priority:1"`
	LabelID         uint                 `gorm:"uniqueIndex:idx_bucket_coord,priority:2"`
	LabelName       string
	BucketType      timeslice.BucketType `gorm:"size:8;uniqueIndex:idx_bucket_coord,priority:3"`
	BucketYear      int                  `gorm:"uniqueIndex:idx_bucket_coord,priority:4"` // ISO week-year for WEEK rows
	BucketValue     int                  `gorm:"uniqueIndex:idx_bucket_coord,priority:5"` // YYYYMMDD, ISO week 1..53, or month 1..12
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Key returns the period coordinate of the row.
func (b Bucket) Key() timeslice.Key {
	return timeslice.Key{Type: b.BucketType, Year: b.BucketYear, Value: b.BucketValue}
}

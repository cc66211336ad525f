package timeslice

import "time"

// BucketType selects the aggregation granularity of a bucket row.
type BucketType string

const (
	BucketDay   BucketType = "DAY"
	BucketWeek  BucketType = "WEEK"
	BucketMonth BucketType = "MONTH"
)

// Key addresses the period of one bucket row. Year is the ISO week-year for
// WEEK keys and the calendar year otherwise; Value is YYYYMMDD for DAY,
// 1..53 for WEEK and 1..12 for MONTH.
type Key struct {
	Type  BucketType
	Year  int
	Value int
}

// Less orders keys by type, year, value. Used to keep store batches deterministic.
func (k Key) Less(other Key) bool {
	if k.Type != other.Type {
		return k.Type < other.Type
	}
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Value < other.Value
}

// DayKey maps a local date to its DAY coordinate.
func DayKey(d time.Time) Key {
	year, month, day := d.Date()
	return Key{Type: BucketDay, Year: year, Value: year*10000 + int(month)*100 + day}
}

// WeekKey maps a local date to its ISO-8601 WEEK coordinate. The week holding
// the date's Thursday decides the week-year, so early-January dates can land in
// week 52/53 of the previous year and late-December dates in week 1 of the next.
func WeekKey(d time.Time) Key {
	year, week := d.ISOWeek()
	return Key{Type: BucketWeek, Year: year, Value: week}
}

// MonthKey maps a local date to its MONTH coordinate.
func MonthKey(d time.Time) Key {
	return Key{Type: BucketMonth, Year: d.Year(), Value: int(d.Month())}
}

// Keys returns the three coordinates a local date contributes to.
func Keys(d time.Time) [3]Key {
	return [3]Key{DayKey(d), WeekKey(d), MonthKey(d)}
}

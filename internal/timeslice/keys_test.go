package timeslice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayKey(t *testing.T) {
	key := DayKey(date(2025, 3, 9))
	assert.Equal(t, Key{Type: BucketDay, Year: 2025, Value: 20250309}, key)
}

func TestWeekKey_EarlyJanuaryBelongsToNewWeekYear(t *testing.T) {
	// 2025-01-01 is a Wednesday; its Thursday is in 2025, so week (2025, 1).
	key := WeekKey(date(2025, 1, 1))
	assert.Equal(t, Key{Type: BucketWeek, Year: 2025, Value: 1}, key)
}

func TestWeekKey_LateDecemberBelongsToNextWeekYear(t *testing.T) {
	// 2018-12-31 is a Monday of the week containing 2019-01-03.
	key := WeekKey(date(2018, 12, 31))
	assert.Equal(t, Key{Type: BucketWeek, Year: 2019, Value: 1}, key)
}

func TestWeekKey_EarlyJanuaryBelongsToPreviousWeekYear(t *testing.T) {
	// 2021-01-01 is a Friday; its week belongs to 2020 as week 53.
	key := WeekKey(date(2021, 1, 1))
	assert.Equal(t, Key{Type: BucketWeek, Year: 2020, Value: 53}, key)
}

func TestMonthKey(t *testing.T) {
	key := MonthKey(date(2025, 12, 24))
	assert.Equal(t, Key{Type: BucketMonth, Year: 2025, Value: 12}, key)
}

func TestKeys_ReturnsAllThreeGranularities(t *testing.T) {
	keys := Keys(date(2025, 1, 1))
	assert.Equal(t, Key{Type: BucketDay, Year: 2025, Value: 20250101}, keys[0])
	assert.Equal(t, Key{Type: BucketWeek, Year: 2025, Value: 1}, keys[1])
	assert.Equal(t, Key{Type: BucketMonth, Year: 2025, Value: 1}, keys[2])
}

func TestKeyLess_OrdersByTypeYearValue(t *testing.T) {
	a := Key{Type: BucketDay, Year: 2025, Value: 20250101}
	b := Key{Type: BucketWeek, Year: 2024, Value: 52}
	c := Key{Type: BucketWeek, Year: 2025, Value: 1}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(b))
}

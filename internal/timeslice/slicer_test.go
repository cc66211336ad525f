package timeslice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func sliceSum(slices []DaySlice) int {
	total := 0
	for _, s := range slices {
		total += s.Minutes
	}
	return total
}

func TestSliceByDay_SingleDay(t *testing.T) {
	loc := mustLoad(t, "Europe/Berlin")
	start := time.Date(2025, 4, 15, 10, 0, 0, 0, loc)

	slices := SliceByDay(start, 60, loc)

	require.Len(t, slices, 1)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, loc), slices[0].Day)
	assert.Equal(t, 60, slices[0].Minutes)
}

func TestSliceByDay_MidnightCrossing(t *testing.T) {
	loc := mustLoad(t, "Europe/Berlin")
	start := time.Date(2025, 4, 15, 23, 30, 0, 0, loc)

	slices := SliceByDay(start, 120, loc)

	require.Len(t, slices, 2)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, loc), slices[0].Day)
	assert.Equal(t, 30, slices[0].Minutes)
	assert.Equal(t, time.Date(2025, 4, 16, 0, 0, 0, 0, loc), slices[1].Day)
	assert.Equal(t, 90, slices[1].Minutes)
	assert.Equal(t, 120, sliceSum(slices))
}

func TestSliceByDay_YearBoundary(t *testing.T) {
	loc := mustLoad(t, "Europe/Berlin")
	start := time.Date(2024, 12, 31, 23, 0, 0, 0, loc)

	slices := SliceByDay(start, 120, loc)

	require.Len(t, slices, 2)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, loc), slices[0].Day)
	assert.Equal(t, 60, slices[0].Minutes)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), slices[1].Day)
	assert.Equal(t, 60, slices[1].Minutes)
}

func TestSliceByDay_MultiDay(t *testing.T) {
	loc := mustLoad(t, "UTC")
	start := time.Date(2025, 6, 2, 22, 0, 0, 0, loc)

	// 22:00 Monday for 50 hours: 120 + 1440 + 1440 remainder.
	slices := SliceByDay(start, 50*60, loc)

	require.Len(t, slices, 3)
	assert.Equal(t, 120, slices[0].Minutes)
	assert.Equal(t, 1440, slices[1].Minutes)
	assert.Equal(t, 50*60-120-1440, slices[2].Minutes)
	assert.Equal(t, 50*60, sliceSum(slices))
}

func TestSliceByDay_ZeroAndNegativeDuration(t *testing.T) {
	loc := mustLoad(t, "Europe/Berlin")
	start := time.Date(2025, 4, 15, 10, 0, 0, 0, loc)

	assert.Empty(t, SliceByDay(start, 0, loc))
	assert.Empty(t, SliceByDay(start, -45, loc))
}

func TestSliceByDay_SumEqualsDurationAcrossDST(t *testing.T) {
	cases := []struct {
		name    string
		zone    string
		start   time.Time
		minutes int
	}{
		{
			name:    "spring forward New York",
			zone:    "America/New_York",
			start:   time.Date(2025, 3, 8, 22, 30, 0, 0, time.UTC),
			minutes: 300,
		},
		{
			name:    "fall back Berlin",
			zone:    "Europe/Berlin",
			start:   time.Date(2025, 10, 25, 20, 0, 0, 0, time.UTC),
			minutes: 600,
		},
		{
			name:    "half hour offset Kathmandu",
			zone:    "Asia/Kathmandu",
			start:   time.Date(2025, 7, 1, 3, 10, 0, 0, time.UTC),
			minutes: 1500,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc := mustLoad(t, tc.zone)
			slices := SliceByDay(tc.start, tc.minutes, loc)
			assert.Equal(t, tc.minutes, sliceSum(slices))
			for i := 1; i < len(slices); i++ {
				assert.True(t, slices[i-1].Day.Before(slices[i].Day), "slices must be ordered")
			}
		})
	}
}

func TestSliceByDay_InputInOtherZoneIsConvertedToOwnerZone(t *testing.T) {
	berlin := mustLoad(t, "Europe/Berlin")
	// 23:00 UTC is already past midnight in Berlin during summer time.
	start := time.Date(2025, 7, 14, 23, 0, 0, 0, time.UTC)

	slices := SliceByDay(start, 60, berlin)

	require.Len(t, slices, 1)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, berlin), slices[0].Day)
}

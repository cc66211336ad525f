package service

import (
	"context"
	"time"

	"time-tracker/internal/timeslice"
)

// LabelStats is the rollup answered for a label set at one instant, in minutes.
type LabelStats struct {
	Today     int
	ThisWeek  int
	LastWeek  int
	ThisMonth int
	LastMonth int
	AllTime   int
}

// StatsService answers rollup queries over bucket rows.
type StatsService struct {
	buckets BucketStore
}

func NewStatsService(buckets BucketStore) *StatsService {
	return &StatsService{buckets: buckets}
}

// ComputeStats sums tracked minutes for the label set at five calendar
// coordinates plus the all-time total, one batched lookup each. now must
// already be resolved in the owner's timezone; it is never read from the system
// clock. This week and last week carry independent ISO week-years, so the pair
// can straddle a year boundary. An empty label set returns zeros without
// touching the store. Overlapping label sets double-count; callers must not
// supply them.
func (s *StatsService) ComputeStats(ctx context.Context, userID uint, labelIDs []uint, now time.Time) (LabelStats, error) {
	var stats LabelStats
	if len(labelIDs) == 0 {
		return stats, nil
	}

	coords := []struct {
		dst *int
		key timeslice.Key
	}{
		{&stats.Today, timeslice.DayKey(now)},
		{&stats.ThisWeek, timeslice.WeekKey(now)},
		{&stats.LastWeek, timeslice.WeekKey(now.AddDate(0, 0, -7))},
		{&stats.ThisMonth, timeslice.MonthKey(now)},
		{&stats.LastMonth, timeslice.MonthKey(previousMonth(now))},
	}
	for _, coord := range coords {
		total, err := s.buckets.SumByKey(ctx, userID, labelIDs, coord.key)
		if err != nil {
			return LabelStats{}, err
		}
		*coord.dst = total
	}

	allTime, err := s.buckets.SumAllTime(ctx, userID, labelIDs)
	if err != nil {
		return LabelStats{}, err
	}
	stats.AllTime = allTime

	return stats, nil
}

// previousMonth returns a date inside the calendar month before now's, handling
// the January → December year rollover.
func previousMonth(now time.Time) time.Time {
	year, month, _ := now.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
}

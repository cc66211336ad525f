package timeslice

import "time"

// DaySlice is the portion of a tracked interval falling on one local calendar day.
type DaySlice struct {
	Day     time.Time // local midnight of the day
	Minutes int
}

// SliceByDay splits an interval of the given length, starting at the given
// absolute instant, into per-day minute contributions in loc. The first and
// last slices are clipped to local midnight and the per-day minutes always sum
// to the input. Spans are measured on the wall clock between local instants,
// not by instant subtraction, so DST shifts do not distort the split.
// A zero or negative duration yields no slices.
func SliceByDay(start time.Time, minutes int, loc *time.Location) []DaySlice {
	if minutes <= 0 {
		return nil
	}

	cursor := start.In(loc)
	remaining := minutes

	var slices []DaySlice
	for remaining > 0 {
		day := midnight(cursor)
		next := day.AddDate(0, 0, 1)
		span := wallMinutes(cursor, next)
		if span <= 0 || span > remaining {
			span = remaining
		}
		slices = append(slices, DaySlice{Day: day, Minutes: span})
		remaining -= span
		cursor = next
	}
	return slices
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// wallMinutes measures the wall-clock minutes between two local instants using
// calendar fields only, ignoring UTC offset changes between them.
func wallMinutes(from, to time.Time) int {
	days := civilDays(to) - civilDays(from)
	return days*24*60 + to.Hour()*60 + to.Minute() - from.Hour()*60 - from.Minute()
}

// civilDays counts calendar days since the Unix epoch for t's local date.
func civilDays(t time.Time) int {
	year, month, day := t.Date()
	return int(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

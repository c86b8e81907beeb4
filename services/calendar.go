package services

import (
	"iter"
	"time"
)

// Date-range conventions used across the codebase: RoomRate and RoomBlock
// ranges are inclusive on both ends, bookings are inclusive check-in and
// exclusive check-out (a guest occupies nights CheckIn..CheckOut-1). Every
// comparison that mixes the two converts explicitly.

// DateOnly truncates t to midnight UTC so date comparisons ignore clock time.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights between check-in and check-out,
// never less than 1 even for degenerate equal-date input.
func Nights(checkIn, checkOut time.Time) int {
	n := int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// RangesOverlap reports whether two inclusive-inclusive date ranges share
// at least one day.
func RangesOverlap(aFrom, aTo, bFrom, bTo time.Time) bool {
	return !aFrom.After(bTo) && !aTo.Before(bFrom)
}

// DaysBetween yields each date from startInclusive up to but excluding
// endExclusive, one per night of a stay. The sequence is a pure function of
// its bounds and can be ranged over any number of times.
func DaysBetween(startInclusive, endExclusive time.Time) iter.Seq[time.Time] {
	start := DateOnly(startInclusive)
	end := DateOnly(endExclusive)
	return func(yield func(time.Time) bool) {
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DaysThrough yields each date of the inclusive range [from, to].
func DaysThrough(from, to time.Time) iter.Seq[time.Time] {
	return DaysBetween(from, DateOnly(to).AddDate(0, 0, 1))
}

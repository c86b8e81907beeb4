package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 3, 1, 17, 45, 12, 0, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), DateOnly(in))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(day("2026-03-01"), day("2026-03-03")))
	assert.Equal(t, 1, Nights(day("2026-03-01"), day("2026-03-02")))
	// degenerate equal dates still count one night
	assert.Equal(t, 1, Nights(day("2026-03-01"), day("2026-03-01")))
}

func TestRangesOverlap(t *testing.T) {
	assert.True(t, RangesOverlap(day("2026-01-01"), day("2026-01-10"), day("2026-01-10"), day("2026-01-20")))
	assert.True(t, RangesOverlap(day("2026-01-05"), day("2026-01-06"), day("2026-01-01"), day("2026-01-31")))
	assert.False(t, RangesOverlap(day("2026-01-01"), day("2026-01-09"), day("2026-01-10"), day("2026-01-20")))
}

func TestDaysBetweenExcludesEnd(t *testing.T) {
	var got []time.Time
	for d := range DaysBetween(day("2026-03-01"), day("2026-03-03")) {
		got = append(got, d)
	}
	assert.Equal(t, []time.Time{day("2026-03-01"), day("2026-03-02")}, got)
}

func TestDaysBetweenRestartable(t *testing.T) {
	seq := DaysBetween(day("2026-03-01"), day("2026-03-04"))
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, 3, second)
}

func TestDaysThroughIncludesEnd(t *testing.T) {
	var got []time.Time
	for d := range DaysThrough(day("2026-03-01"), day("2026-03-03")) {
		got = append(got, d)
	}
	assert.Equal(t, []time.Time{day("2026-03-01"), day("2026-03-02"), day("2026-03-03")}, got)
}

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	assert.True(t, IsBusinessDay(day(2025, 8, 20)))   // Wednesday
	assert.False(t, IsBusinessDay(day(2025, 8, 23)))  // Saturday
	assert.False(t, IsBusinessDay(day(2025, 8, 24)))  // Sunday
	assert.False(t, IsBusinessDay(day(2025, 6, 19)))  // Corpus Christi (Thursday)
	assert.False(t, IsBusinessDay(day(2025, 12, 25))) // Christmas
}

func TestBusinessDayLimit_SkipsWeekend(t *testing.T) {
	// Monday 2025-08-18: three business days back crosses the weekend.
	limit := BusinessDayLimit(day(2025, 8, 18), 3)
	assert.Equal(t, day(2025, 8, 13), limit)
}

func TestBusinessDayLimit_SkipsHoliday(t *testing.T) {
	// Tuesday 2025-06-24: the walk crosses the 2025-06-19 holiday.
	limit := BusinessDayLimit(day(2025, 6, 24), 3)
	assert.Equal(t, day(2025, 6, 18), limit)
}

func TestOldEnough_Boundary(t *testing.T) {
	// Wednesday 2025-08-20: limit is Friday 2025-08-15.
	now := time.Date(2025, 8, 20, 15, 45, 0, 0, time.UTC)

	assert.True(t, OldEnough(day(2025, 8, 15), now, 3), "boundary day is accepted")
	assert.True(t, OldEnough(day(2025, 8, 14), now, 3), "one day earlier is accepted")
	assert.False(t, OldEnough(day(2025, 8, 18), now, 3), "one business day later is rejected")
	assert.False(t, OldEnough(day(2025, 8, 20), now, 3), "same day is rejected")
}

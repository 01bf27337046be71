package util

import "time"

// State and municipal holidays for São Paulo, maintained by hand per year.
var spHolidays = map[string]struct{}{
	"2025-01-01": {}, "2025-01-25": {}, "2025-03-03": {}, "2025-03-04": {},
	"2025-04-18": {}, "2025-04-21": {}, "2025-05-01": {}, "2025-06-19": {},
	"2025-07-09": {}, "2025-09-07": {}, "2025-10-12": {}, "2025-11-02": {},
	"2025-11-15": {}, "2025-11-20": {}, "2025-12-25": {},
	"2026-01-01": {}, "2026-01-25": {}, "2026-02-16": {}, "2026-02-17": {},
	"2026-04-03": {}, "2026-04-21": {}, "2026-05-01": {}, "2026-06-04": {},
	"2026-07-09": {}, "2026-09-07": {}, "2026-10-12": {}, "2026-11-02": {},
	"2026-11-15": {}, "2026-11-20": {}, "2026-12-25": {},
}

// IsBusinessDay reports whether t falls on a weekday that is not a holiday.
func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, holiday := spHolidays[t.Format("2006-01-02")]
	return !holiday
}

// BusinessDayLimit walks backward from now, one calendar day at a time,
// until count business days have been skipped. The returned date is the
// most recent occurrence date a submission may reference.
func BusinessDayLimit(now time.Time, count int) time.Time {
	date := truncateToDay(now)
	for counted := 0; counted < count; {
		date = date.AddDate(0, 0, -1)
		if IsBusinessDay(date) {
			counted++
		}
	}
	return date
}

// OldEnough reports whether the occurrence date is at least minBusinessDays
// business days in the past. The boundary day itself is accepted.
func OldEnough(occurrence, now time.Time, minBusinessDays int) bool {
	return !truncateToDay(occurrence).After(BusinessDayLimit(now, minBusinessDays))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package domain

import "time"

// IsWorkingDay reports whether day is a business day: not a weekend day the
// policy leaves disabled, and not a resolved holiday. This is the single
// weekend/holiday predicate in the codebase; the timeline layout and the
// calendar calculus both go through it.
func IsWorkingDay(day time.Time, holidays HolidaySet, policy WorkingPolicy) bool {
	switch day.Weekday() {
	case time.Saturday:
		if !policy.WorkOnSaturdays {
			return false
		}
	case time.Sunday:
		if !policy.WorkOnSundays {
			return false
		}
	}
	return !holidays.Contains(day)
}

// NoonAnchor pins t to 12:00 on the same calendar date, in t's location.
// Walking day by day on a noon anchor keeps daylight-saving transitions from
// shifting the date underneath the arithmetic.
func NoonAnchor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// AddBusinessDays advances start by n business days, skipping disabled
// weekend days and holidays. n may be zero (start is returned unchanged) or
// negative (walks backward). The time of day of start is preserved.
func AddBusinessDays(start time.Time, n int, holidays HolidaySet, policy WorkingPolicy) time.Time {
	if n == 0 {
		return start
	}

	step := 1
	remaining := n
	if n < 0 {
		step = -1
		remaining = -n
	}

	cursor := NoonAnchor(start)
	for remaining > 0 {
		cursor = cursor.AddDate(0, 0, step)
		if IsWorkingDay(cursor, holidays, policy) {
			remaining--
		}
	}

	return time.Date(cursor.Year(), cursor.Month(), cursor.Day(),
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
}

// BusinessDaysBetween counts the business days between from and to, signed:
// negative when to precedes from, zero when both fall on the same date.
// It is the exact inverse of AddBusinessDays: for a business day d and n >= 0,
// BusinessDaysBetween(d, AddBusinessDays(d, n, h, p), h, p) == n.
func BusinessDaysBetween(from, to time.Time, holidays HolidaySet, policy WorkingPolicy) int {
	a := NoonAnchor(from)
	b := NoonAnchor(to)
	if a.Equal(b) {
		return 0
	}

	sign := 1
	if b.Before(a) {
		a, b = b, a
		sign = -1
	}

	count := 0
	for cursor := a.AddDate(0, 0, 1); !cursor.After(b); cursor = cursor.AddDate(0, 0, 1) {
		if IsWorkingDay(cursor, holidays, policy) {
			count++
		}
	}
	return sign * count
}

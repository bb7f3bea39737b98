package domain

import "time"

// DayColumn is the proportional horizontal position of one day column within
// a visible window. Fractions are unit-free so any rendering surface can
// multiply them by its own pixel width.
type DayColumn struct {
	OffsetFraction float64
	WidthFraction  float64
}

// Bar is a timeline bar clamped into the visible window. Both fractions stay
// within [0, 1]; a bar entirely outside the window has zero width.
type Bar struct {
	LeftFraction  float64
	WidthFraction float64
}

// calendarDaysBetween counts whole calendar days from a to b, zero-based and
// signed. Noon anchors keep daylight-saving days from rounding off by one.
func calendarDaysBetween(a, b time.Time) int {
	hours := NoonAnchor(b).Sub(NoonAnchor(a)).Hours()
	if hours < 0 {
		return -int(-hours/24 + 0.5)
	}
	return int(hours/24 + 0.5)
}

// DayColumnPosition maps day onto its column within a window starting at
// windowStart and spanning totalVisibleDays columns.
func DayColumnPosition(windowStart time.Time, totalVisibleDays int, day time.Time) DayColumn {
	if totalVisibleDays <= 0 {
		return DayColumn{}
	}
	index := calendarDaysBetween(windowStart, day)
	return DayColumn{
		OffsetFraction: float64(index) / float64(totalVisibleDays),
		WidthFraction:  1 / float64(totalVisibleDays),
	}
}

// BarSpan computes the clamped horizontal span of an event bar. The event may
// start before the window or extend past it; the result never leaves [0, 1]
// and the width is never negative.
func BarSpan(eventStart time.Time, eventDurationDays int, windowStart time.Time, totalVisibleDays int) Bar {
	if totalVisibleDays <= 0 || eventDurationDays <= 0 {
		return Bar{}
	}

	startIndex := calendarDaysBetween(windowStart, eventStart)
	left := float64(startIndex) / float64(totalVisibleDays)
	right := float64(startIndex+eventDurationDays) / float64(totalVisibleDays)

	left = clampFraction(left)
	right = clampFraction(right)
	if right < left {
		right = left
	}

	return Bar{LeftFraction: left, WidthFraction: right - left}
}

func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// IsNonWorkingDay reports whether a day column should render as off-work.
// Delegates to IsWorkingDay so the timeline can never drift from the
// calendar calculus.
func IsNonWorkingDay(day time.Time, holidays HolidaySet, policy WorkingPolicy) bool {
	return !IsWorkingDay(day, holidays, policy)
}

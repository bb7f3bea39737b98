package domain

import (
	"errors"
	"fmt"
	"time"
)

// IntervalSource identifies where a normalized interval came from. The
// conflict detector itself is source-agnostic; the tag only matters to
// callers presenting the conflict back to the user.
type IntervalSource string

const (
	SourceAppointment IntervalSource = "appointment"
	SourceBlock       IntervalSource = "block"
	SourceHoliday     IntervalSource = "holiday"
)

// Interval is the common {start, end} shape every bookable entity is
// flattened into before a conflict check. Ephemeral: built fresh per check,
// never persisted.
type Interval struct {
	Start    time.Time
	End      time.Time
	SourceID string
	Source   IntervalSource
}

// ErrDegenerateInterval marks an interval whose end does not come after its
// start. Such an interval must never slip past a conflict check as "free".
var ErrDegenerateInterval = errors.New("domain: interval end must be after start")

// Validate rejects zero- or negative-duration intervals.
func (i Interval) Validate() error {
	if !i.End.After(i.Start) {
		return fmt.Errorf("%w: %s [%s, %s]", ErrDegenerateInterval,
			i.SourceID, i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
	}
	return nil
}

// Overlaps reports open-interval overlap: intervals that only touch at an
// endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// FindConflicts returns every existing interval overlapping the candidate,
// skipping the one whose SourceID equals excludeSourceID (edit-in-place
// checks). The result depends only on the inputs, not on their order.
func FindConflicts(candidate Interval, existing []Interval, excludeSourceID string) ([]Interval, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	var conflicts []Interval
	for _, interval := range existing {
		if excludeSourceID != "" && interval.SourceID == excludeSourceID {
			continue
		}
		if err := interval.Validate(); err != nil {
			return nil, err
		}
		if candidate.Overlaps(interval) {
			conflicts = append(conflicts, interval)
		}
	}
	return conflicts, nil
}

// HasConflict reports whether any existing interval overlaps the candidate.
func HasConflict(candidate Interval, existing []Interval, excludeSourceID string) (bool, error) {
	conflicts, err := FindConflicts(candidate, existing, excludeSourceID)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

// HolidayWindow is the all-day interval of a holiday date, midnight to
// midnight, used when holidays take part in conflict checks.
func HolidayWindow(day time.Time) Interval {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return Interval{
		Start:    start,
		End:      start.AddDate(0, 0, 1),
		SourceID: "holiday:" + start.Format(DateFormat),
		Source:   SourceHoliday,
	}
}

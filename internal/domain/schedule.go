package domain

import (
	"errors"
	"fmt"
	"time"
)

// SchedulingStatus is the status lattice shared by the assembly,
// post-assembly and technical-assistance scheduling tracks.
type SchedulingStatus string

const (
	StatusUnscheduled SchedulingStatus = "unscheduled"
	StatusForecast    SchedulingStatus = "forecast"
	StatusConfirmed   SchedulingStatus = "confirmed"
	StatusDone        SchedulingStatus = "done"
)

// Valid reports whether s is a known status.
func (s SchedulingStatus) Valid() bool {
	switch s {
	case StatusUnscheduled, StatusForecast, StatusConfirmed, StatusDone:
		return true
	}
	return false
}

// SchedulingRecord is the status + date fields of one scheduling track.
// Invariants: Confirmed and Done carry a ScheduledDate; Forecast carries a
// ForecastDate and no ScheduledDate; Unscheduled carries neither. Team
// assignment is orthogonal to status.
type SchedulingRecord struct {
	Status        SchedulingStatus
	ForecastDate  *time.Time
	ScheduledDate *time.Time
	TeamID        *int64
	TeamName      *string
}

// ErrInvalidTransition is returned when a target status is missing its
// required date or is unknown. Surfaced as a typed error so the caller can
// show a validation message instead of silently ignoring the change.
var ErrInvalidTransition = errors.New("domain: invalid scheduling transition")

// ApplyStatus validates and normalizes the date fields of a track for the
// target status chosen by the user. It returns the updated record; the
// current record is never mutated. Any status may be forced back to
// Unscheduled (a cancel, or a reopen when coming from Done).
func ApplyStatus(current SchedulingRecord, target SchedulingStatus, chosenDate *time.Time) (SchedulingRecord, error) {
	next := current

	switch target {
	case StatusUnscheduled:
		next.ForecastDate = nil
		next.ScheduledDate = nil

	case StatusForecast:
		if chosenDate == nil {
			return current, fmt.Errorf("%w: forecast requires a date", ErrInvalidTransition)
		}
		date := *chosenDate
		next.ForecastDate = &date
		next.ScheduledDate = nil

	case StatusConfirmed:
		if chosenDate == nil {
			return current, fmt.Errorf("%w: confirmation requires a date", ErrInvalidTransition)
		}
		// Forecast is kept in sync with the confirmed date so older reads of
		// "forecast" still resolve.
		date := *chosenDate
		next.ForecastDate = &date
		next.ScheduledDate = &date

	case StatusDone:
		if current.ScheduledDate == nil {
			return current, fmt.Errorf("%w: cannot complete a track that was never confirmed", ErrInvalidTransition)
		}
		// Dates are retained as last confirmed.

	default:
		return current, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}

	next.Status = target
	return next, nil
}

// DeriveStatus infers the status of a track from its raw date fields. This is
// the one shared implementation of the inference the original screens each
// re-derived locally.
func DeriveStatus(forecastDate, scheduledDate *time.Time, done bool) SchedulingStatus {
	switch {
	case done && scheduledDate != nil:
		return StatusDone
	case scheduledDate != nil:
		return StatusConfirmed
	case forecastDate != nil:
		return StatusForecast
	default:
		return StatusUnscheduled
	}
}

// AssignTeam sets the team fields without touching status or dates.
func (r SchedulingRecord) AssignTeam(teamID int64, teamName string) SchedulingRecord {
	r.TeamID = &teamID
	r.TeamName = &teamName
	return r
}

// ClearTeam removes the team assignment, e.g. when the owning team was
// deleted. Status and dates are unaffected.
func (r SchedulingRecord) ClearTeam() SchedulingRecord {
	r.TeamID = nil
	r.TeamName = nil
	return r
}

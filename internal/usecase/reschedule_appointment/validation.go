package reschedule_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// validateRequest checks the request shape before touching storage.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PublicID) == "" {
		return fmt.Errorf("%w: publicID is required", ErrInvalidInput)
	}

	if _, err := uuid.Parse(req.PublicID); err != nil {
		return fmt.Errorf("%w: publicID must be a valid UUID", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinAppointmentDurationMinutes ||
			*req.DurationMinutes > domain.MaxAppointmentDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinAppointmentDurationMinutes, domain.MaxAppointmentDurationMinutes)
		}
	}

	return nil
}

// validateDateNotPast rejects dates strictly before today in now's location.
func validateDateNotPast(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// validateWithinWorkingHours checks the interval against the policy window.
func validateWithinWorkingHours(interval domain.Interval, date time.Time, policy domain.WorkingPolicy) error {
	dayStart, err := policy.DayStart.OnDate(date)
	if err != nil {
		return fmt.Errorf("%w: invalid dayStart in policy: %v", ErrInternal, err)
	}
	dayEnd, err := policy.DayEnd.OnDate(date)
	if err != nil {
		return fmt.Errorf("%w: invalid dayEnd in policy: %v", ErrInternal, err)
	}

	if interval.Start.Before(dayStart) || interval.End.After(dayEnd) {
		return ErrOutsideWorkingHours
	}
	return nil
}

package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrAppointmentNotFound is returned when no appointment matches the public ID.
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrCannotReschedule is returned for completed, cancelled or no-show appointments.
	ErrCannotReschedule = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrDateInPast is returned when the new date is before today.
	ErrDateInPast = errors.New("reschedule_appointment: date is in the past")

	// ErrNonWorkingDay is returned when the new date is a weekend or holiday.
	ErrNonWorkingDay = errors.New("reschedule_appointment: date is not a working day")

	// ErrOutsideWorkingHours is returned when the new window falls outside agenda hours.
	ErrOutsideWorkingHours = errors.New("reschedule_appointment: time is outside working hours")

	// ErrScheduleConflict is returned when the new window overlaps another
	// appointment or agenda block.
	ErrScheduleConflict = errors.New("reschedule_appointment: schedule conflict")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("reschedule_appointment: internal error")
)

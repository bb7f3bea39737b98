package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrDateInPast is returned when the requested date is before today.
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrNonWorkingDay is returned when the requested date is a weekend or holiday.
	ErrNonWorkingDay = errors.New("create_appointment: date is not a working day")

	// ErrOutsideWorkingHours is returned when the appointment window falls
	// outside the configured agenda hours.
	ErrOutsideWorkingHours = errors.New("create_appointment: time is outside working hours")

	// ErrScheduleConflict is returned when the requested window overlaps an
	// existing appointment or agenda block.
	ErrScheduleConflict = errors.New("create_appointment: schedule conflict")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("create_appointment: internal error")
)

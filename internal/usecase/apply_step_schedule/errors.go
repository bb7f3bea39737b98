package apply_step_schedule

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("apply_step_schedule: invalid input data")

	// ErrProjectNotFound is returned when no project matches the ID.
	ErrProjectNotFound = errors.New("apply_step_schedule: project not found")

	// ErrTeamNotFound is returned when the staffing service has no such team.
	ErrTeamNotFound = errors.New("apply_step_schedule: team not found")

	// ErrInvalidTransition is returned when the target status is not reachable
	// from the track's current state.
	ErrInvalidTransition = errors.New("apply_step_schedule: invalid scheduling transition")

	// ErrNonWorkingDay is returned when the chosen date is a weekend or holiday.
	ErrNonWorkingDay = errors.New("apply_step_schedule: date is not a working day")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("apply_step_schedule: internal error")
)

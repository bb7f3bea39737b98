package agenda

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the public ID.
	ErrAppointmentNotFound = errors.New("agenda.service: appointment not found")

	// ErrBlockNotFound is returned when no agenda block matches the public ID.
	ErrBlockNotFound = errors.New("agenda.service: agenda block not found")

	// ErrCannotCancel is returned for appointments already finished or cancelled.
	ErrCannotCancel = errors.New("agenda.service: appointment cannot be cancelled")

	// ErrCannotComplete is returned for appointments no longer on the agenda.
	ErrCannotComplete = errors.New("agenda.service: appointment cannot be completed")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("agenda.service: invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("agenda.service: internal error")
)

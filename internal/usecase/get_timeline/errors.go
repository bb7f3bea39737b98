package get_timeline

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_timeline: invalid input data")

	// ErrWindowTooLarge is returned when the requested window exceeds the
	// maximum the board can render.
	ErrWindowTooLarge = errors.New("get_timeline: window is too large")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("get_timeline: internal error")
)

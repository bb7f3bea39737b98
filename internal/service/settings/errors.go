package settings

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("settings.service: invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("settings.service: internal error")
)

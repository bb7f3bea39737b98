package evaluate_deadlines

import "errors"

var (
	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("evaluate_deadlines: internal error")
)

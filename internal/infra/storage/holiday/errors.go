package holiday

import "errors"

var (
	// ErrBuildQuery is returned when the SQL statement cannot be built.
	ErrBuildQuery = errors.New("holiday.repository: failed to build query")

	// ErrExecQuery is returned when the SQL statement fails to execute.
	ErrExecQuery = errors.New("holiday.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("holiday.repository: failed to scan row")
)

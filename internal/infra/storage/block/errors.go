package block

import "errors"

var (
	// ErrBlockNotFound is returned when the agenda block does not exist.
	ErrBlockNotFound = errors.New("block.repository: agenda block not found")

	// ErrBuildQuery is returned when the SQL statement cannot be built.
	ErrBuildQuery = errors.New("block.repository: failed to build query")

	// ErrExecQuery is returned when the SQL statement fails to execute.
	ErrExecQuery = errors.New("block.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("block.repository: failed to scan row")
)

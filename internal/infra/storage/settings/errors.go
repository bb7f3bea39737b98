package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when no scheduling settings row exists
	// yet; callers fall back to domain defaults.
	ErrSettingsNotFound = errors.New("settings.repository: scheduling settings not found")

	// ErrBuildQuery is returned when the SQL statement cannot be built.
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when the SQL statement fails to execute.
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)

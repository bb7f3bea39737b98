package teamservice

import "errors"

var (
	// ErrTeamNotFound is returned when the staffing service has no team with the given ID.
	ErrTeamNotFound = errors.New("team not found")

	// ErrInternal is returned on client-side failures building or sending the request.
	ErrInternal = errors.New("teamservice client: internal error")

	// ErrInvalidResponse is returned when the staffing service answers with an unexpected payload.
	ErrInvalidResponse = errors.New("teamservice client: invalid response")

	// ErrServiceDegraded is returned when the staffing service is unreachable.
	// Callers keep the team ID and leave the display name blank.
	ErrServiceDegraded = errors.New("teamservice unavailable: graceful degradation applied")
)

package apply_step_schedule

import (
	"fmt"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// validateRequest checks the request shape before touching storage.
func validateRequest(req *Request) error {
	if req.ProjectID <= 0 {
		return fmt.Errorf("%w: projectID must be positive", ErrInvalidInput)
	}

	if !req.Track.Valid() {
		return fmt.Errorf("%w: unknown track %q", ErrInvalidInput, req.Track)
	}

	if !req.TargetStatus.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.TargetStatus)
	}

	if req.TeamID != nil && *req.TeamID <= 0 {
		return fmt.Errorf("%w: teamID must be positive", ErrInvalidInput)
	}

	if req.ClearTeam && req.TeamID != nil {
		return fmt.Errorf("%w: teamID and clearTeam are mutually exclusive", ErrInvalidInput)
	}

	if req.ChosenDate != nil && req.ChosenDate.IsZero() {
		return fmt.Errorf("%w: chosen date must not be zero", ErrInvalidInput)
	}

	return nil
}

// needsWorkingDay reports whether the target status places a date on the
// agenda and therefore requires a working day.
func needsWorkingDay(target domain.SchedulingStatus) bool {
	return target == domain.StatusForecast || target == domain.StatusConfirmed
}

package apply_step_schedule

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// Request moves one scheduling track of a project through its status lattice.
type Request struct {
	ProjectID    int64
	Track        domain.ScheduleTrack
	TargetStatus domain.SchedulingStatus
	ChosenDate   *time.Time // required for forecast and confirmed
	TeamID       *int64     // optional crew assignment, resolved via the staffing service
	ClearTeam    bool       // drop the crew assignment, mutually exclusive with TeamID
}

// Response is the track after the transition.
type Response struct {
	ProjectID     int64
	Track         domain.ScheduleTrack
	Status        domain.SchedulingStatus
	ForecastDate  *time.Time
	ScheduledDate *time.Time
	TeamID        *int64
	TeamName      *string
}

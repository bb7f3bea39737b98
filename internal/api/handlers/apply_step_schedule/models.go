package apply_step_schedule

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	applyStepSchedule "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/apply_step_schedule"
)

// ApplyStepScheduleRequest HTTP request model
type ApplyStepScheduleRequest struct {
	Status    string  `json:"status"`         // unscheduled, forecast, confirmed, done
	Date      *string `json:"date,omitempty"` // "2025-10-15", required for forecast and confirmed
	TeamID    *int64  `json:"teamId,omitempty"`
	ClearTeam bool    `json:"clearTeam,omitempty"` // drop the crew assignment, not combinable with teamId
}

// TrackResponse HTTP response model
type TrackResponse struct {
	ProjectID     int64   `json:"projectId"`
	Track         string  `json:"track"`
	Status        string  `json:"status"`
	ForecastDate  *string `json:"forecastDate,omitempty"`
	ScheduledDate *string `json:"scheduledDate,omitempty"`
	TeamID        *int64  `json:"teamId,omitempty"`
	TeamName      *string `json:"teamName,omitempty"`
}

// ToUseCaseRequest converts the HTTP request, parsing the optional date.
func (r *ApplyStepScheduleRequest) ToUseCaseRequest(projectID int64, track string) (*applyStepSchedule.Request, error) {
	var chosenDate *time.Time
	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		chosenDate = &date
	}

	return &applyStepSchedule.Request{
		ProjectID:    projectID,
		Track:        domain.ScheduleTrack(track),
		TargetStatus: domain.SchedulingStatus(r.Status),
		ChosenDate:   chosenDate,
		TeamID:       r.TeamID,
		ClearTeam:    r.ClearTeam,
	}, nil
}

// FromUseCaseResponse converts the use case response for HTTP.
func FromUseCaseResponse(resp *applyStepSchedule.Response) *TrackResponse {
	return &TrackResponse{
		ProjectID:     resp.ProjectID,
		Track:         string(resp.Track),
		Status:        string(resp.Status),
		ForecastDate:  formatDate(resp.ForecastDate),
		ScheduledDate: formatDate(resp.ScheduledDate),
		TeamID:        resp.TeamID,
		TeamName:      resp.TeamName,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}

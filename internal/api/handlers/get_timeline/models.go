package get_timeline

import (
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	getTimeline "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/get_timeline"
)

// ColumnResponse is one day column of the board.
type ColumnResponse struct {
	Date       string  `json:"date"`
	Offset     float64 `json:"offset"`
	Width      float64 `json:"width"`
	NonWorking bool    `json:"nonWorking"`
}

// ProjectBarResponse is one laid out assembly bar.
type ProjectBarResponse struct {
	ProjectID    int64   `json:"projectId"`
	Code         string  `json:"code"`
	CustomerName string  `json:"customerName"`
	Date         string  `json:"date"`
	Confirmed    bool    `json:"confirmed"`
	TeamName     *string `json:"teamName,omitempty"`
	Left         float64 `json:"left"`
	Width        float64 `json:"width"`
}

// AppointmentBarResponse is one laid out measurement appointment.
type AppointmentBarResponse struct {
	PublicID     string  `json:"publicId"`
	CustomerName string  `json:"customerName"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Left         float64 `json:"left"`
	Width        float64 `json:"width"`
}

// TimelineResponse is the whole board.
type TimelineResponse struct {
	StartDate       string                   `json:"startDate"`
	EndDate         string                   `json:"endDate"`
	TotalDays       int                      `json:"totalDays"`
	Columns         []ColumnResponse         `json:"columns"`
	ProjectBars     []ProjectBarResponse     `json:"projectBars"`
	AppointmentBars []AppointmentBarResponse `json:"appointmentBars"`
}

// FromUseCaseResponse converts the use case response for HTTP.
func FromUseCaseResponse(resp *getTimeline.Response) *TimelineResponse {
	columns := make([]ColumnResponse, 0, len(resp.Columns))
	for _, c := range resp.Columns {
		columns = append(columns, ColumnResponse{
			Date:       c.Date.Format(domain.DateFormat),
			Offset:     c.Offset,
			Width:      c.Width,
			NonWorking: c.NonWorking,
		})
	}

	projectBars := make([]ProjectBarResponse, 0, len(resp.ProjectBars))
	for _, b := range resp.ProjectBars {
		projectBars = append(projectBars, ProjectBarResponse{
			ProjectID:    b.ProjectID,
			Code:         b.Code,
			CustomerName: b.CustomerName,
			Date:         b.Date.Format(domain.DateFormat),
			Confirmed:    b.Confirmed,
			TeamName:     b.TeamName,
			Left:         b.Left,
			Width:        b.Width,
		})
	}

	appointmentBars := make([]AppointmentBarResponse, 0, len(resp.AppointmentBars))
	for _, b := range resp.AppointmentBars {
		appointmentBars = append(appointmentBars, AppointmentBarResponse{
			PublicID:     b.PublicID,
			CustomerName: b.CustomerName,
			Date:         b.Date.Format(domain.DateFormat),
			Status:       b.Status,
			Left:         b.Left,
			Width:        b.Width,
		})
	}

	return &TimelineResponse{
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		TotalDays:       resp.TotalDays,
		Columns:         columns,
		ProjectBars:     projectBars,
		AppointmentBars: appointmentBars,
	}
}

package reschedule_appointment

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

// Request moves an existing appointment to a new window.
type Request struct {
	PublicID        string           // appointment public ID (UUID)
	NewDate         time.Time        // new date, time part ignored
	NewStartTime    types.TimeString // new start, "HH:MM"
	DurationMinutes *int             // nil keeps the current duration
}

// Response is the appointment after the move.
type Response struct {
	ID              int64
	PublicID        string
	ProjectID       *int64
	CustomerName    string
	CustomerPhone   string
	Address         string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

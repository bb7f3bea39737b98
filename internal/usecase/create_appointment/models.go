package create_appointment

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

// Request carries the data for a new measurement appointment.
type Request struct {
	ProjectID       *int64           // linked sale, optional for walk-in measurements
	CustomerName    string           // customer full name
	CustomerPhone   string           // contact phone
	Address         string           // visit address
	Date            time.Time        // appointment date, time part ignored
	StartTime       types.TimeString // visit start, "HH:MM"
	DurationMinutes int              // 0 picks the store default
	Notes           *string          // optional free-form notes
}

// Conflict describes one interval that blocked the requested window.
type Conflict struct {
	SourceID string // public ID of the conflicting appointment or block
	Source   string // appointment, block or holiday
	Start    time.Time
	End      time.Time
}

// Response is the created appointment.
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

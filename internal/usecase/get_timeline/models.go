package get_timeline

import (
	"time"
)

// Request selects the visible window of the installation board.
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Column is one rendered day of the board header.
type Column struct {
	Date       time.Time
	Offset     float64 // fraction of the board width, [0, 1)
	Width      float64 // fraction of the board width
	NonWorking bool    // weekends and holidays get the shaded background
}

// ProjectBar is one project's assembly visit laid out on the board.
type ProjectBar struct {
	ProjectID    int64
	Code         string
	CustomerName string
	Date         time.Time
	Confirmed    bool // scheduled date, not just a forecast
	TeamName     *string
	Left         float64 // fraction of the board width
	Width        float64 // fraction of the board width, 0 when fully outside
}

// AppointmentBar is one measurement appointment laid out on the board.
type AppointmentBar struct {
	PublicID     string
	CustomerName string
	Date         time.Time
	Status       string
	Left         float64
	Width        float64
}

// Response is the fully laid out board.
type Response struct {
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
	Columns         []Column
	ProjectBars     []ProjectBar
	AppointmentBars []AppointmentBar
}

// assemblyBarDurationDays is the width of an assembly visit on the board.
const assemblyBarDurationDays = 1

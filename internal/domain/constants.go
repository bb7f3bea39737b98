package domain

// Default configuration values
const (
	DefaultAppointmentDurationMinutes = 90
	DefaultDayStart                   = "08:00"
	DefaultDayEnd                     = "18:00"
)

// Business validation constants
const (
	MinAppointmentDurationMinutes = 15
	MaxAppointmentDurationMinutes = 480 // 8 hours
	MaxNotesLength                = 500
	MaxCancellationReasonLength   = 500
	MaxTimelineWindowDays         = 120
)

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	MonthDayFormat = "01-02"      // MM-DD, recurring holidays
)

// InactiveAppointmentStatuses are the statuses excluded from conflict checks
// and agenda availability counts.
var InactiveAppointmentStatuses = []AppointmentStatus{
	AppointmentCancelled,
	AppointmentNoShow,
}

// ActiveAppointmentStatuses are the statuses that occupy agenda time.
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentPending,
	AppointmentConfirmed,
	AppointmentCompleted,
}

package domain

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

// AppointmentStatus represents the status of a measurement appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Appointment is a measurement visit booked through the customer portal.
type Appointment struct {
	ID              int64
	PublicID        string // UUID, also the interval SourceID in conflict checks
	ProjectID       *int64 // linked workflow record, when one exists
	CustomerName    string
	CustomerPhone   string
	Address         string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies agenda time.
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentCancelled && a.Status != AppointmentNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// CanBeRescheduled returns true if the appointment can be moved.
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// Interval normalizes the appointment into the shape the conflict detector
// consumes.
func (a *Appointment) Interval() (Interval, error) {
	start, err := a.StartTime.OnDate(a.Date)
	if err != nil {
		return Interval{}, err
	}
	interval := Interval{
		Start:    start,
		End:      start.Add(time.Duration(a.DurationMinutes) * time.Minute),
		SourceID: a.PublicID,
		Source:   SourceAppointment,
	}
	if err := interval.Validate(); err != nil {
		return Interval{}, err
	}
	return interval, nil
}

// AgendaFilter selects appointments for agenda and conflict-check reads.
type AgendaFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}

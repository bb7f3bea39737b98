package models

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

// Request models

// CancelAppointmentRequest cancels one appointment with a reason.
type CancelAppointmentRequest struct {
	PublicID           string `json:"publicId"`
	CancellationReason string `json:"cancellationReason"`
}

// CreateBlockRequest blocks a window of agenda time.
type CreateBlockRequest struct {
	Date      time.Time        `json:"date"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Reason    string           `json:"reason"`
}

// GetDayAgendaRequest selects one agenda day.
type GetDayAgendaRequest struct {
	Date            time.Time `json:"date"`
	IncludeInactive bool      `json:"includeInactive,omitempty"`
}

// Response models

// AppointmentResponse is one appointment as rendered on the agenda.
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	PublicID           string  `json:"publicId"`
	ProjectID          *int64  `json:"projectId,omitempty"`
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone,omitempty"`
	Address            string  `json:"address"`
	Date               string  `json:"date"`      // "2025-10-15"
	StartTime          string  `json:"startTime"` // "10:00"
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// BlockResponse is one manual agenda block.
type BlockResponse struct {
	ID        int64  `json:"id"`
	PublicID  string `json:"publicId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// DayAgendaResponse is one agenda day with everything booked on it.
type DayAgendaResponse struct {
	Date         string                `json:"date"`
	WorkingDay   bool                  `json:"workingDay"`
	Appointments []AppointmentResponse `json:"appointments"`
	Blocks       []BlockResponse       `json:"blocks"`
}

// FromDomainAppointment converts a domain appointment for the agenda surface.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		PublicID:           a.PublicID,
		ProjectID:          a.ProjectID,
		CustomerName:       a.CustomerName,
		CustomerPhone:      a.CustomerPhone,
		Address:            a.Address,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList converts a slice of domain appointments.
func FromDomainAppointmentList(appointments []*domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, *FromDomainAppointment(a))
	}
	return out
}

// FromDomainBlock converts a domain agenda block.
func FromDomainBlock(b *domain.AgendaBlock) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID,
		PublicID:  b.PublicID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBlockList converts a slice of domain agenda blocks.
func FromDomainBlockList(blocks []*domain.AgendaBlock) []BlockResponse {
	out := make([]BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, *FromDomainBlock(b))
	}
	return out
}

package models

import (
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

// Request models

// UpdateSettingsRequest replaces the store working-day policy.
type UpdateSettingsRequest struct {
	WorkOnSaturdays bool             `json:"workOnSaturdays"`
	WorkOnSundays   bool             `json:"workOnSundays"`
	DayStart        types.TimeString `json:"dayStart"` // "08:00"
	DayEnd          types.TimeString `json:"dayEnd"`   // "18:00"
}

// ToDomainPolicy converts the request into the domain policy.
func (r *UpdateSettingsRequest) ToDomainPolicy() domain.WorkingPolicy {
	return domain.WorkingPolicy{
		WorkOnSaturdays: r.WorkOnSaturdays,
		WorkOnSundays:   r.WorkOnSundays,
		DayStart:        r.DayStart,
		DayEnd:          r.DayEnd,
	}
}

// HolidayInput is one holiday row in a replace request.
type HolidayInput struct {
	Date string `json:"date"` // MM-DD for fixed, YYYY-MM-DD or MM-DD for specific
	Name string `json:"name"`
	Kind string `json:"kind"` // fixed or specific
	Year *int   `json:"year,omitempty"`
}

// ReplaceHolidaysRequest replaces the whole store holiday table.
type ReplaceHolidaysRequest struct {
	Holidays []HolidayInput `json:"holidays"`
}

// Response models

// SettingsResponse is the stored working-day policy.
type SettingsResponse struct {
	WorkOnSaturdays bool   `json:"workOnSaturdays"`
	WorkOnSundays   bool   `json:"workOnSundays"`
	DayStart        string `json:"dayStart"`
	DayEnd          string `json:"dayEnd"`
}

// FromDomainPolicy converts the domain policy for the settings surface.
func FromDomainPolicy(policy domain.WorkingPolicy) *SettingsResponse {
	return &SettingsResponse{
		WorkOnSaturdays: policy.WorkOnSaturdays,
		WorkOnSundays:   policy.WorkOnSundays,
		DayStart:        policy.DayStart.String(),
		DayEnd:          policy.DayEnd.String(),
	}
}

// HolidayResponse is one stored holiday row.
type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Year *int   `json:"year,omitempty"`
}

// HolidayListResponse is the whole store holiday table.
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// FromDomainHolidays converts the stored entries.
func FromDomainHolidays(entries []domain.HolidayEntry) *HolidayListResponse {
	holidays := make([]HolidayResponse, 0, len(entries))
	for _, e := range entries {
		holidays = append(holidays, HolidayResponse{
			Date: e.Date,
			Name: e.Name,
			Kind: string(e.Kind),
			Year: e.Year,
		})
	}
	return &HolidayListResponse{Holidays: holidays}
}

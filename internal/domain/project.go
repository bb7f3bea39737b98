package domain

import (
	"errors"
	"time"
)

// ScheduleTrack names one of the three scheduling tracks every project
// carries. All three run the same state machine.
type ScheduleTrack string

const (
	TrackAssembly     ScheduleTrack = "assembly"
	TrackPostAssembly ScheduleTrack = "post_assembly"
	TrackAssistance   ScheduleTrack = "assistance"
)

// Valid reports whether t is a known track.
func (t ScheduleTrack) Valid() bool {
	switch t {
	case TrackAssembly, TrackPostAssembly, TrackAssistance:
		return true
	}
	return false
}

// ErrUnknownTrack is returned for a track name outside the fixed set.
var ErrUnknownTrack = errors.New("domain: unknown schedule track")

// Project is one workflow batch record: a sold furniture project moving
// through the production workflow.
type Project struct {
	ID           int64
	Code         string // contract number, shown on every screen
	CustomerName string

	// SLA reference: the step the project currently sits in and when it
	// entered that step.
	CurrentStepID string
	StepEnteredAt time.Time

	Assembly     SchedulingRecord
	PostAssembly SchedulingRecord
	Assistance   SchedulingRecord

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Track returns the scheduling record of the named track.
func (p *Project) Track(track ScheduleTrack) (SchedulingRecord, error) {
	switch track {
	case TrackAssembly:
		return p.Assembly, nil
	case TrackPostAssembly:
		return p.PostAssembly, nil
	case TrackAssistance:
		return p.Assistance, nil
	default:
		return SchedulingRecord{}, ErrUnknownTrack
	}
}

// SetTrack replaces the scheduling record of the named track.
func (p *Project) SetTrack(track ScheduleTrack, record SchedulingRecord) error {
	switch track {
	case TrackAssembly:
		p.Assembly = record
	case TrackPostAssembly:
		p.PostAssembly = record
	case TrackAssistance:
		p.Assistance = record
	default:
		return ErrUnknownTrack
	}
	return nil
}

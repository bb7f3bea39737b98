package domain

import (
	"fmt"
	"time"
)

// DeadlineTier classifies how much SLA room a workflow step has left.
type DeadlineTier string

const (
	TierOnTrack DeadlineTier = "on_track"
	TierWarning DeadlineTier = "warning"
	TierOverdue DeadlineTier = "overdue"
)

// WarningThresholdDays is the boundary between OnTrack and Warning, in
// business days remaining. The value is part of the UI contract every screen
// renders against; change it here and nowhere else.
const WarningThresholdDays = 15

// DeadlineResult is the computed SLA reading for one workflow step. It is
// derived on every request ("now" constantly moves) and never persisted.
type DeadlineResult struct {
	DueAt                 time.Time
	BusinessDaysRemaining int
	Tier                  DeadlineTier
}

// TierFor maps a signed days-remaining figure to its urgency tier.
func TierFor(businessDaysRemaining int) DeadlineTier {
	switch {
	case businessDaysRemaining < 0:
		return TierOverdue
	case businessDaysRemaining <= WarningThresholdDays:
		return TierWarning
	default:
		return TierOnTrack
	}
}

// EvaluateDeadline computes when a step is due and how many business days
// remain. reference is the instant the step was entered (or last updated);
// now is injected by the caller so readings are reproducible in tests.
// slaBusinessDays may be zero for steps with no allotted time, in which case
// the step is due at the reference instant itself.
func EvaluateDeadline(reference time.Time, slaBusinessDays int, now time.Time, holidays HolidaySet, policy WorkingPolicy) DeadlineResult {
	dueAt := AddBusinessDays(reference, slaBusinessDays, holidays, policy)
	remaining := BusinessDaysBetween(now, dueAt, holidays, policy)
	return DeadlineResult{
		DueAt:                 dueAt,
		BusinessDaysRemaining: remaining,
		Tier:                  TierFor(remaining),
	}
}

// Chip is a pure presentational mapping of a deadline reading: a short label
// plus a severity class, independent of any rendering toolkit.
type Chip struct {
	Label    string
	Severity string
}

// Chip severity classes shared with StageBadge.
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
	SeverityInfo    = "info"
	SeverityNeutral = "neutral"
)

// DeadlineChip renders a DeadlineResult as a label + severity pair.
func DeadlineChip(result DeadlineResult) Chip {
	switch {
	case result.Tier == TierOverdue:
		return Chip{
			Label:    fmt.Sprintf("%dd em atraso", -result.BusinessDaysRemaining),
			Severity: SeverityDanger,
		}
	case result.BusinessDaysRemaining == 0:
		return Chip{Label: "vence hoje", Severity: SeverityWarning}
	case result.Tier == TierWarning:
		return Chip{
			Label:    fmt.Sprintf("%dd restantes", result.BusinessDaysRemaining),
			Severity: SeverityWarning,
		}
	default:
		return Chip{
			Label:    fmt.Sprintf("%dd restantes", result.BusinessDaysRemaining),
			Severity: SeveritySuccess,
		}
	}
}

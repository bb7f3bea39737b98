package evaluate_deadlines

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// ProjectDeadline is one project's SLA position on the follow-up board.
type ProjectDeadline struct {
	ProjectID    int64
	Code         string
	CustomerName string

	StepID    string
	StepName  string
	OwnerRole string
	Stage     domain.Chip // stage badge for the board column header

	DueAt                 time.Time
	BusinessDaysRemaining int
	Tier                  domain.DeadlineTier
	Chip                  domain.Chip // deadline chip rendered next to the project
}

// Response is the evaluated board.
type Response struct {
	GeneratedAt time.Time
	Items       []ProjectDeadline

	// TierCounts is keyed by deadline tier, feeding the alert gauges.
	TierCounts map[domain.DeadlineTier]int
}

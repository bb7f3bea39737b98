package get_deadlines

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	evaluateDeadlines "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/evaluate_deadlines"
)

// ChipResponse is a rendered chip: label plus severity class.
type ChipResponse struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// ProjectDeadlineResponse is one row of the follow-up board.
type ProjectDeadlineResponse struct {
	ProjectID             int64        `json:"projectId"`
	Code                  string       `json:"code"`
	CustomerName          string       `json:"customerName"`
	StepID                string       `json:"stepId"`
	StepName              string       `json:"stepName"`
	OwnerRole             string       `json:"ownerRole"`
	Stage                 ChipResponse `json:"stage"`
	DueAt                 string       `json:"dueAt"` // "2025-10-15"
	BusinessDaysRemaining int          `json:"businessDaysRemaining"`
	Tier                  string       `json:"tier"`
	Chip                  ChipResponse `json:"chip"`
}

// DeadlinesResponse is the whole board.
type DeadlinesResponse struct {
	GeneratedAt string                    `json:"generatedAt"`
	Items       []ProjectDeadlineResponse `json:"items"`
	OnTrack     int                       `json:"onTrack"`
	Warning     int                       `json:"warning"`
	Overdue     int                       `json:"overdue"`
}

// FromUseCaseResponse converts the use case response for HTTP.
func FromUseCaseResponse(resp *evaluateDeadlines.Response) *DeadlinesResponse {
	items := make([]ProjectDeadlineResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, ProjectDeadlineResponse{
			ProjectID:             item.ProjectID,
			Code:                  item.Code,
			CustomerName:          item.CustomerName,
			StepID:                item.StepID,
			StepName:              item.StepName,
			OwnerRole:             item.OwnerRole,
			Stage:                 ChipResponse{Label: item.Stage.Label, Severity: item.Stage.Severity},
			DueAt:                 item.DueAt.Format(domain.DateFormat),
			BusinessDaysRemaining: item.BusinessDaysRemaining,
			Tier:                  string(item.Tier),
			Chip:                  ChipResponse{Label: item.Chip.Label, Severity: item.Chip.Severity},
		})
	}

	return &DeadlinesResponse{
		GeneratedAt: resp.GeneratedAt.Format(time.RFC3339),
		Items:       items,
		OnTrack:     resp.TierCounts[domain.TierOnTrack],
		Warning:     resp.TierCounts[domain.TierWarning],
		Overdue:     resp.TierCounts[domain.TierOverdue],
	}
}

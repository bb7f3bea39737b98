package evaluate_deadlines

import (
	"context"
	"errors"
	"fmt"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
)

// UseCase evaluates the SLA deadline of every active project's current
// workflow step.
type UseCase struct {
	projectRepo  ProjectRepository
	holidayRepo  HolidayRepository
	settingsRepo SettingsRepository
	steps        []domain.WorkflowStep
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase wires the use case dependencies. steps is the configured
// workflow, in pipeline order.
func NewUseCase(
	projectRepo ProjectRepository,
	holidayRepo HolidayRepository,
	settingsRepo SettingsRepository,
	steps []domain.WorkflowStep,
	logger Logger,
) *UseCase {
	return &UseCase{
		projectRepo:  projectRepo,
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
		steps:        steps,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the follow-up board. Projects pointing at an unknown step
// are skipped with a warning rather than failing the whole board.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Working-day policy
	policy, err := uc.loadPolicy(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Holiday set covering this year and the next, SLA windows can cross
	// the year boundary in December
	holidays, err := uc.loadHolidays(ctx, []int{now.Year(), now.Year() + 1})
	if err != nil {
		return nil, err
	}

	// 3. Active projects
	projects, err := uc.projectRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("EvaluateDeadlines: failed to load projects: %v", err)
		return nil, fmt.Errorf("%w: failed to load projects: %v", ErrInternal, err)
	}

	// 4. Evaluate each project against its current step's SLA
	items := make([]ProjectDeadline, 0, len(projects))
	tierCounts := map[domain.DeadlineTier]int{
		domain.TierOnTrack: 0,
		domain.TierWarning: 0,
		domain.TierOverdue: 0,
	}

	for _, p := range projects {
		step, ok := domain.StepByID(uc.steps, p.CurrentStepID)
		if !ok {
			uc.logger.Warn("EvaluateDeadlines: project %d references unknown step %q, skipping", p.ID, p.CurrentStepID)
			continue
		}

		result := domain.EvaluateDeadline(p.StepEnteredAt, step.SLABusinessDays, now, holidays, policy)
		tierCounts[result.Tier]++

		if result.Tier == domain.TierOverdue {
			uc.logger.Warn("EvaluateDeadlines: project %s (%d) overdue on step %s by %d business day(s)",
				p.Code, p.ID, step.ID, -result.BusinessDaysRemaining)
		}

		items = append(items, ProjectDeadline{
			ProjectID:             p.ID,
			Code:                  p.Code,
			CustomerName:          p.CustomerName,
			StepID:                step.ID,
			StepName:              step.Name,
			OwnerRole:             step.OwnerRole,
			Stage:                 domain.StageBadge(step),
			DueAt:                 result.DueAt,
			BusinessDaysRemaining: result.BusinessDaysRemaining,
			Tier:                  result.Tier,
			Chip:                  domain.DeadlineChip(result),
		})
	}

	uc.logger.Info("EvaluateDeadlines: evaluated %d project(s): %d on track, %d warning, %d overdue",
		len(items), tierCounts[domain.TierOnTrack], tierCounts[domain.TierWarning], tierCounts[domain.TierOverdue])

	return &Response{
		GeneratedAt: now,
		Items:       items,
		TierCounts:  tierCounts,
	}, nil
}

func (uc *UseCase) loadPolicy(ctx context.Context) (domain.WorkingPolicy, error) {
	policy, err := uc.settingsRepo.GetWorkingPolicy(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultWorkingPolicy(), nil
		}
		uc.logger.Error("EvaluateDeadlines: failed to load settings: %v", err)
		return domain.WorkingPolicy{}, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}
	return *policy, nil
}

func (uc *UseCase) loadHolidays(ctx context.Context, years []int) (domain.HolidaySet, error) {
	entries, err := uc.holidayRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("EvaluateDeadlines: failed to load holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to load holidays: %v", ErrInternal, err)
	}

	holidays, skipped := domain.ResolveHolidays(domain.NationalHolidays, entries, years)
	for _, s := range skipped {
		uc.logger.Warn("EvaluateDeadlines: skipped malformed holiday %q: %s", s.Entry.Name, s.Reason)
	}
	return holidays, nil
}

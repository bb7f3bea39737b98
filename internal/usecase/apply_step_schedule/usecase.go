package apply_step_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	projectRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/project"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	teamClient "github.com/ottoncsilva/fluxo-mobili-sub002/internal/integrations/teamservice"
)

// UseCase moves one scheduling track of a project to a new status.
type UseCase struct {
	projectRepo  ProjectRepository
	holidayRepo  HolidayRepository
	settingsRepo SettingsRepository
	teamService  TeamServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase wires the use case dependencies.
func NewUseCase(
	projectRepo ProjectRepository,
	holidayRepo HolidayRepository,
	settingsRepo SettingsRepository,
	teamService TeamServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		projectRepo:  projectRepo,
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
		teamService:  teamService,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute applies the transition inside a serializable transaction. The
// staffing service is consulted before the transaction so an unreachable
// external service never holds database locks.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyStepSchedule: project=%d, track=%s, status=%s",
		req.ProjectID, req.Track, req.TargetStatus)

	// 1. Validate request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyStepSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the crew name, degrading to ID-only when the staffing
	// service is down
	var teamName *string
	if req.TeamID != nil {
		team, err := uc.teamService.GetTeamWithGracefulDegradation(ctx, *req.TeamID)
		switch {
		case err == nil:
			teamName = &team.Name
		case errors.Is(err, teamClient.ErrTeamNotFound):
			uc.logger.Warn("ApplyStepSchedule: team %d not found", *req.TeamID)
			return nil, ErrTeamNotFound
		case errors.Is(err, teamClient.ErrServiceDegraded):
			uc.logger.Warn("ApplyStepSchedule: staffing service degraded, keeping team %d without a name", *req.TeamID)
		default:
			uc.logger.Error("ApplyStepSchedule: failed to resolve team %d: %v", *req.TeamID, err)
			return nil, fmt.Errorf("%w: failed to resolve team: %v", ErrInternal, err)
		}
	}

	var result domain.SchedulingRecord

	// 3. Storage work in a serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Load the project
		project, err := uc.projectRepo.GetByID(txCtx, req.ProjectID)
		if err != nil {
			if errors.Is(err, projectRepo.ErrProjectNotFound) {
				uc.logger.Warn("ApplyStepSchedule: project %d not found", req.ProjectID)
				return ErrProjectNotFound
			}
			uc.logger.Error("ApplyStepSchedule: failed to load project %d: %v", req.ProjectID, err)
			return fmt.Errorf("%w: failed to load project: %v", ErrInternal, err)
		}

		// 3.2. A forecast or confirmation must land on a working day
		if needsWorkingDay(req.TargetStatus) && req.ChosenDate != nil {
			workingDay, err := uc.isWorkingDay(txCtx, *req.ChosenDate)
			if err != nil {
				return err
			}
			if !workingDay {
				uc.logger.Warn("ApplyStepSchedule: %s is not a working day", req.ChosenDate.Format(domain.DateFormat))
				return ErrNonWorkingDay
			}
		}

		// 3.3. Apply the transition on the track
		current, err := project.Track(req.Track)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		next, err := domain.ApplyStatus(current, req.TargetStatus, req.ChosenDate)
		if err != nil {
			uc.logger.Warn("ApplyStepSchedule: transition rejected: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		// 3.4. Crew assignment is orthogonal to status
		switch {
		case req.ClearTeam:
			next = next.ClearTeam()
		case req.TeamID != nil:
			if teamName != nil {
				next = next.AssignTeam(*req.TeamID, *teamName)
			} else {
				id := *req.TeamID
				next.TeamID = &id
				next.TeamName = nil
			}
		}

		// 3.5. Persist the track
		if err := uc.projectRepo.UpdateTrack(txCtx, req.ProjectID, req.Track, next); err != nil {
			uc.logger.Error("ApplyStepSchedule: failed to persist track: %v", err)
			return fmt.Errorf("%w: failed to persist track: %v", ErrInternal, err)
		}

		result = next
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApplyStepSchedule: project=%d track=%s now %s", req.ProjectID, req.Track, result.Status)

	return &Response{
		ProjectID:     req.ProjectID,
		Track:         req.Track,
		Status:        result.Status,
		ForecastDate:  result.ForecastDate,
		ScheduledDate: result.ScheduledDate,
		TeamID:        result.TeamID,
		TeamName:      result.TeamName,
	}, nil
}

// isWorkingDay resolves the policy and holidays for date's year and checks it.
func (uc *UseCase) isWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	policy, err := uc.settingsRepo.GetWorkingPolicy(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			fallback := domain.DefaultWorkingPolicy()
			policy = &fallback
		} else {
			uc.logger.Error("ApplyStepSchedule: failed to load settings: %v", err)
			return false, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
		}
	}

	entries, err := uc.holidayRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("ApplyStepSchedule: failed to load holidays: %v", err)
		return false, fmt.Errorf("%w: failed to load holidays: %v", ErrInternal, err)
	}

	holidays, skipped := domain.ResolveHolidays(domain.NationalHolidays, entries, []int{date.Year()})
	for _, s := range skipped {
		uc.logger.Warn("ApplyStepSchedule: skipped malformed holiday %q: %s", s.Entry.Name, s.Reason)
	}

	return domain.IsWorkingDay(date, holidays, *policy), nil
}

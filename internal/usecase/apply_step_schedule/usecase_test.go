package apply_step_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	projectRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/project"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/integrations/teamservice"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
)

type stubProjectRepo struct {
	project      *domain.Project
	updatedTrack domain.ScheduleTrack
	updated      *domain.SchedulingRecord
}

func (s *stubProjectRepo) GetByID(_ context.Context, id int64) (*domain.Project, error) {
	if s.project == nil || s.project.ID != id {
		return nil, projectRepo.ErrProjectNotFound
	}
	copied := *s.project
	return &copied, nil
}

func (s *stubProjectRepo) UpdateTrack(_ context.Context, _ int64, track domain.ScheduleTrack, record domain.SchedulingRecord) error {
	s.updatedTrack = track
	s.updated = &record
	return nil
}

type stubHolidayRepo struct {
	entries []domain.HolidayEntry
}

func (s *stubHolidayRepo) GetAll(_ context.Context) ([]domain.HolidayEntry, error) {
	return s.entries, nil
}

type stubSettingsRepo struct{}

func (stubSettingsRepo) GetWorkingPolicy(_ context.Context) (*domain.WorkingPolicy, error) {
	policy := domain.DefaultWorkingPolicy()
	return &policy, nil
}

type stubTeamService struct {
	team *teamservice.Team
	err  error
}

func (s *stubTeamService) GetTeamWithGracefulDegradation(_ context.Context, _ int64) (*teamservice.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.team, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	useCase     *UseCase
	projectRepo *stubProjectRepo
	holidayRepo *stubHolidayRepo
	teamService *stubTeamService
}

func newFixture(p *domain.Project) *fixture {
	f := &fixture{
		projectRepo: &stubProjectRepo{project: p},
		holidayRepo: &stubHolidayRepo{},
		teamService: &stubTeamService{team: &teamservice.Team{ID: 3, Name: "Equipe Alfa", Active: true}},
	}
	f.useCase = NewUseCase(
		f.projectRepo,
		f.holidayRepo,
		stubSettingsRepo{},
		f.teamService,
		passthroughTxManager{},
		noopLogger{},
	)
	return f
}

func unscheduledProject() *domain.Project {
	return &domain.Project{
		ID:            11,
		Code:          "CT-2024-042",
		CustomerName:  "Carla Dias",
		CurrentStepID: "montagem",
		StepEnteredAt: date(2024, time.May, 2),
		Active:        true,
	}
}

// 2024-05-16 is a Thursday.
var workingDay = date(2024, time.May, 16)

func TestExecute_ForecastAssembly(t *testing.T) {
	f := newFixture(unscheduledProject())
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusForecast,
		ChosenDate:   &workingDay,
	}

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusForecast, resp.Status)
	require.NotNil(t, resp.ForecastDate)
	assert.Equal(t, workingDay, *resp.ForecastDate)
	assert.Nil(t, resp.ScheduledDate)
	assert.Equal(t, domain.TrackAssembly, f.projectRepo.updatedTrack)
}

func TestExecute_ConfirmWithTeam(t *testing.T) {
	p := unscheduledProject()
	p.Assistance = domain.SchedulingRecord{
		Status:       domain.StatusForecast,
		ForecastDate: &workingDay,
	}
	f := newFixture(p)
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssistance,
		TargetStatus: domain.StatusConfirmed,
		ChosenDate:   &workingDay,
		TeamID:       ptr.Ptr(int64(3)),
	}

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	require.NotNil(t, resp.ScheduledDate)
	assert.Equal(t, workingDay, *resp.ScheduledDate)
	require.NotNil(t, resp.TeamName)
	assert.Equal(t, "Equipe Alfa", *resp.TeamName)
}

func TestExecute_DegradedStaffingServiceKeepsTeamID(t *testing.T) {
	f := newFixture(unscheduledProject())
	f.teamService.err = teamservice.ErrServiceDegraded
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusForecast,
		ChosenDate:   &workingDay,
		TeamID:       ptr.Ptr(int64(3)),
	}

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.TeamID)
	assert.Equal(t, int64(3), *resp.TeamID)
	assert.Nil(t, resp.TeamName, "name stays empty until the staffing service recovers")
}

func TestExecute_ClearTeamKeepsStatusAndDates(t *testing.T) {
	p := unscheduledProject()
	p.Assembly = domain.SchedulingRecord{
		Status:        domain.StatusConfirmed,
		ForecastDate:  &workingDay,
		ScheduledDate: &workingDay,
		TeamID:        ptr.Ptr(int64(3)),
		TeamName:      ptr.Ptr("Equipe Alfa"),
	}
	f := newFixture(p)
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusConfirmed,
		ChosenDate:   &workingDay,
		ClearTeam:    true,
	}

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.TeamID)
	assert.Nil(t, resp.TeamName)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	require.NotNil(t, resp.ScheduledDate)
	assert.Equal(t, workingDay, *resp.ScheduledDate)
	require.NotNil(t, f.projectRepo.updated)
	assert.Nil(t, f.projectRepo.updated.TeamID)
}

func TestExecute_ClearTeamWithTeamIDRejected(t *testing.T) {
	f := newFixture(unscheduledProject())
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusForecast,
		ChosenDate:   &workingDay,
		TeamID:       ptr.Ptr(int64(3)),
		ClearTeam:    true,
	}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, f.projectRepo.updated)
}

func TestExecute_UnknownTeamRejected(t *testing.T) {
	f := newFixture(unscheduledProject())
	f.teamService.err = teamservice.ErrTeamNotFound
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusForecast,
		ChosenDate:   &workingDay,
		TeamID:       ptr.Ptr(int64(99)),
	}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTeamNotFound)
	assert.Nil(t, f.projectRepo.updated)
}

func TestExecute_InvalidTransition(t *testing.T) {
	f := newFixture(unscheduledProject())
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusDone, // done without a confirmed date
	}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, f.projectRepo.updated)
}

func TestExecute_ForecastOnSundayRejected(t *testing.T) {
	f := newFixture(unscheduledProject())
	sunday := date(2024, time.May, 19)
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusForecast,
		ChosenDate:   &sunday,
	}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestExecute_ForecastOnStoreHolidayRejected(t *testing.T) {
	f := newFixture(unscheduledProject())
	f.holidayRepo.entries = []domain.HolidayEntry{
		{Date: "2024-05-16", Name: "Inventário", Kind: domain.HolidaySpecific},
	}
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusForecast,
		ChosenDate:   &workingDay,
	}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestExecute_UnscheduleIgnoresWorkingDayRule(t *testing.T) {
	p := unscheduledProject()
	p.Assembly = domain.SchedulingRecord{
		Status:        domain.StatusConfirmed,
		ForecastDate:  &workingDay,
		ScheduledDate: &workingDay,
	}
	f := newFixture(p)
	req := &Request{
		ProjectID:    11,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusUnscheduled,
	}

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnscheduled, resp.Status)
	assert.Nil(t, resp.ForecastDate)
	assert.Nil(t, resp.ScheduledDate)
}

func TestExecute_ProjectNotFound(t *testing.T) {
	f := newFixture(unscheduledProject())
	req := &Request{
		ProjectID:    404,
		Track:        domain.TrackAssembly,
		TargetStatus: domain.StatusForecast,
		ChosenDate:   &workingDay,
	}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestExecute_UnknownTrackRejected(t *testing.T) {
	f := newFixture(unscheduledProject())
	req := &Request{
		ProjectID:    11,
		Track:        domain.ScheduleTrack("delivery"),
		TargetStatus: domain.StatusForecast,
		ChosenDate:   &workingDay,
	}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

package evaluate_deadlines

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

type stubProjectRepo struct {
	projects []*domain.Project
	err      error
}

func (s *stubProjectRepo) GetActive(_ context.Context) ([]*domain.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.projects, nil
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

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testSteps = []domain.WorkflowStep{
	{ID: "projeto_executivo", Name: "Projeto executivo", OwnerRole: "projetista", SLABusinessDays: 5, Stage: 1},
	{ID: "producao", Name: "Produção", OwnerRole: "fabrica", SLABusinessDays: 30, Stage: 2},
	{ID: "montagem", Name: "Montagem", OwnerRole: "montagem", SLABusinessDays: 7, Stage: 3},
}

// Monday 2024-06-03, far from any fixed national holiday.
var testNow = time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC)

func newFixture(projects ...*domain.Project) (*UseCase, *stubProjectRepo, *stubHolidayRepo) {
	projectRepo := &stubProjectRepo{projects: projects}
	holidayRepo := &stubHolidayRepo{}
	uc := NewUseCase(projectRepo, holidayRepo, stubSettingsRepo{}, testSteps, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc, projectRepo, holidayRepo
}

func project(id int64, stepID string, enteredAt time.Time) *domain.Project {
	return &domain.Project{
		ID:            id,
		Code:          "CT-2024-001",
		CustomerName:  "Ana Lima",
		CurrentStepID: stepID,
		StepEnteredAt: enteredAt,
		Active:        true,
	}
}

func TestExecute_OverdueProject(t *testing.T) {
	// Entered "projeto_executivo" (5 business days) on Mon 2024-05-06; due
	// Mon 2024-05-13, long past by June.
	uc, _, _ := newFixture(project(1, "projeto_executivo", time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC)))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.Equal(t, domain.TierOverdue, item.Tier)
	assert.Negative(t, item.BusinessDaysRemaining)
	assert.Equal(t, 1, resp.TierCounts[domain.TierOverdue])
	assert.Equal(t, domain.SeverityDanger, item.Chip.Severity)
}

func TestExecute_WarningProject(t *testing.T) {
	// Entered "montagem" (7 business days) today: 7 days remaining, inside
	// the 15-day warning threshold.
	uc, _, _ := newFixture(project(2, "montagem", testNow))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, domain.TierWarning, resp.Items[0].Tier)
	assert.Equal(t, 7, resp.Items[0].BusinessDaysRemaining)
	assert.Equal(t, 1, resp.TierCounts[domain.TierWarning])
}

func TestExecute_OnTrackProject(t *testing.T) {
	// "producao" carries a 30-business-day SLA, comfortably past the
	// warning threshold when entered today.
	uc, _, _ := newFixture(project(3, "producao", testNow))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, domain.TierOnTrack, resp.Items[0].Tier)
	assert.Equal(t, 1, resp.TierCounts[domain.TierOnTrack])
}

func TestExecute_TierCountsAlwaysCarryAllTiers(t *testing.T) {
	uc, _, _ := newFixture()

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.TierCounts[domain.TierOnTrack])
	assert.Equal(t, 0, resp.TierCounts[domain.TierWarning])
	assert.Equal(t, 0, resp.TierCounts[domain.TierOverdue])
	assert.Equal(t, testNow, resp.GeneratedAt)
}

func TestExecute_UnknownStepIsSkipped(t *testing.T) {
	uc, _, _ := newFixture(
		project(4, "etapa_removida", testNow),
		project(5, "montagem", testNow),
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(5), resp.Items[0].ProjectID)
}

func TestExecute_StoreHolidayExtendsDeadline(t *testing.T) {
	uc, _, holidayRepo := newFixture(project(6, "montagem", testNow))
	baseline, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// A store holiday inside the SLA window pushes the due date out one day.
	holidayRepo.entries = []domain.HolidayEntry{
		{Date: "2024-06-05", Name: "Inventário", Kind: domain.HolidaySpecific},
	}

	extended, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		baseline.Items[0].DueAt.AddDate(0, 0, 1),
		extended.Items[0].DueAt)
}

func TestExecute_ProjectRepoFailure(t *testing.T) {
	uc, projectRepo, _ := newFixture()
	projectRepo.err = assert.AnError

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

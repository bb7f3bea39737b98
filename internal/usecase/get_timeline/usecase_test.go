package get_timeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

type stubProjectRepo struct {
	projects []*domain.Project
}

func (s *stubProjectRepo) GetScheduledInWindow(_ context.Context, _, _ time.Time) ([]*domain.Project, error) {
	return s.projects, nil
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AgendaFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	useCase         *UseCase
	projectRepo     *stubProjectRepo
	appointmentRepo *stubAppointmentRepo
	holidayRepo     *stubHolidayRepo
}

func newFixture() *fixture {
	f := &fixture{
		projectRepo:     &stubProjectRepo{},
		appointmentRepo: &stubAppointmentRepo{},
		holidayRepo:     &stubHolidayRepo{},
	}
	f.useCase = NewUseCase(f.projectRepo, f.appointmentRepo, f.holidayRepo, stubSettingsRepo{}, noopLogger{})
	return f
}

// Mon 2024-05-13 through Sun 2024-05-19, a seven day window.
var (
	windowStart = date(2024, time.May, 13)
	windowEnd   = date(2024, time.May, 19)
)

func TestExecute_ColumnsCoverTheWindow(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{StartDate: windowStart, EndDate: windowEnd})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.TotalDays)
	require.Len(t, resp.Columns, 7)

	first := resp.Columns[0]
	assert.Equal(t, windowStart, first.Date)
	assert.Equal(t, 0.0, first.Offset)
	assert.InDelta(t, 1.0/7.0, first.Width, 1e-9)

	last := resp.Columns[6]
	assert.InDelta(t, 6.0/7.0, last.Offset, 1e-9)
}

func TestExecute_WeekendAndHolidayColumnsShaded(t *testing.T) {
	f := newFixture()
	f.holidayRepo.entries = []domain.HolidayEntry{
		{Date: "2024-05-15", Name: "Inventário", Kind: domain.HolidaySpecific},
	}

	resp, err := f.useCase.Execute(context.Background(), &Request{StartDate: windowStart, EndDate: windowEnd})

	require.NoError(t, err)
	assert.False(t, resp.Columns[0].NonWorking, "Monday")
	assert.True(t, resp.Columns[2].NonWorking, "store holiday on Wednesday")
	assert.True(t, resp.Columns[5].NonWorking, "Saturday")
	assert.True(t, resp.Columns[6].NonWorking, "Sunday")
}

func TestExecute_ConfirmedAssemblyWinsOverForecast(t *testing.T) {
	scheduled := date(2024, time.May, 14)
	forecast := date(2024, time.May, 16)
	f := newFixture()
	f.projectRepo.projects = []*domain.Project{
		{
			ID:           1,
			Code:         "CT-2024-001",
			CustomerName: "Ana Lima",
			Assembly: domain.SchedulingRecord{
				Status:        domain.StatusConfirmed,
				ForecastDate:  &forecast,
				ScheduledDate: &scheduled,
				TeamName:      ptr.Ptr("Equipe Alfa"),
			},
		},
	}

	resp, err := f.useCase.Execute(context.Background(), &Request{StartDate: windowStart, EndDate: windowEnd})

	require.NoError(t, err)
	require.Len(t, resp.ProjectBars, 1)
	bar := resp.ProjectBars[0]
	assert.Equal(t, scheduled, bar.Date)
	assert.True(t, bar.Confirmed)
	assert.InDelta(t, 1.0/7.0, bar.Left, 1e-9, "second column")
	assert.InDelta(t, 1.0/7.0, bar.Width, 1e-9, "one day wide")
}

func TestExecute_ForecastBarIsNotConfirmed(t *testing.T) {
	forecast := date(2024, time.May, 16)
	f := newFixture()
	f.projectRepo.projects = []*domain.Project{
		{
			ID:   2,
			Code: "CT-2024-002",
			Assembly: domain.SchedulingRecord{
				Status:       domain.StatusForecast,
				ForecastDate: &forecast,
			},
		},
	}

	resp, err := f.useCase.Execute(context.Background(), &Request{StartDate: windowStart, EndDate: windowEnd})

	require.NoError(t, err)
	require.Len(t, resp.ProjectBars, 1)
	assert.False(t, resp.ProjectBars[0].Confirmed)
}

func TestExecute_UnscheduledAssemblyProducesNoBar(t *testing.T) {
	f := newFixture()
	f.projectRepo.projects = []*domain.Project{
		{ID: 3, Code: "CT-2024-003"},
	}

	resp, err := f.useCase.Execute(context.Background(), &Request{StartDate: windowStart, EndDate: windowEnd})

	require.NoError(t, err)
	assert.Empty(t, resp.ProjectBars)
}

func TestExecute_AppointmentBars(t *testing.T) {
	f := newFixture()
	f.appointmentRepo.appointments = []*domain.Appointment{
		{
			PublicID:        "9e8d7c6b-5a49-4838-9726-150413029181",
			CustomerName:    "Bruno Alves",
			Date:            date(2024, time.May, 17),
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 90,
			Status:          domain.AppointmentConfirmed,
		},
	}

	resp, err := f.useCase.Execute(context.Background(), &Request{StartDate: windowStart, EndDate: windowEnd})

	require.NoError(t, err)
	require.Len(t, resp.AppointmentBars, 1)
	bar := resp.AppointmentBars[0]
	assert.Equal(t, string(domain.AppointmentConfirmed), bar.Status)
	assert.InDelta(t, 4.0/7.0, bar.Left, 1e-9)
}

func TestExecute_BarOutsideWindowHasZeroWidth(t *testing.T) {
	outside := date(2024, time.June, 10)
	f := newFixture()
	f.projectRepo.projects = []*domain.Project{
		{
			ID:   4,
			Code: "CT-2024-004",
			Assembly: domain.SchedulingRecord{
				Status:       domain.StatusForecast,
				ForecastDate: &outside,
			},
		},
	}

	resp, err := f.useCase.Execute(context.Background(), &Request{StartDate: windowStart, EndDate: windowEnd})

	require.NoError(t, err)
	require.Len(t, resp.ProjectBars, 1)
	assert.Equal(t, 0.0, resp.ProjectBars[0].Width)
}

func TestExecute_WindowTooLarge(t *testing.T) {
	f := newFixture()
	req := &Request{
		StartDate: windowStart,
		EndDate:   windowStart.AddDate(0, 0, domain.MaxTimelineWindowDays),
	}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrWindowTooLarge)
}

func TestExecute_EndBeforeStartRejected(t *testing.T) {
	f := newFixture()
	req := &Request{StartDate: windowEnd, EndDate: windowStart}

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SingleDayWindow(t *testing.T) {
	f := newFixture()
	req := &Request{StartDate: windowStart, EndDate: windowStart}

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalDays)
	require.Len(t, resp.Columns, 1)
	assert.Equal(t, 1.0, resp.Columns[0].Width)
}

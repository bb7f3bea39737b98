package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

type stubAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	stored := *appointment
	stored.ID = 42
	stored.CreatedAt = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	s.created = &stored
	return &stored, nil
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AgendaFilter) ([]*domain.Appointment, error) {
	return s.existing, nil
}

type stubBlockRepo struct {
	blocks []*domain.AgendaBlock
}

func (s *stubBlockRepo) GetByDateRange(_ context.Context, _, _ time.Time) ([]*domain.AgendaBlock, error) {
	return s.blocks, nil
}

type stubHolidayRepo struct {
	entries []domain.HolidayEntry
}

func (s *stubHolidayRepo) GetAll(_ context.Context) ([]domain.HolidayEntry, error) {
	return s.entries, nil
}

type stubSettingsRepo struct {
	policy *domain.WorkingPolicy
	err    error
}

func (s *stubSettingsRepo) GetWorkingPolicy(_ context.Context) (*domain.WorkingPolicy, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.policy, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type fixture struct {
	useCase         *UseCase
	appointmentRepo *stubAppointmentRepo
	blockRepo       *stubBlockRepo
	holidayRepo     *stubHolidayRepo
	settingsRepo    *stubSettingsRepo
}

func newFixture(now time.Time) *fixture {
	policy := domain.DefaultWorkingPolicy()
	f := &fixture{
		appointmentRepo: &stubAppointmentRepo{},
		blockRepo:       &stubBlockRepo{},
		holidayRepo:     &stubHolidayRepo{},
		settingsRepo:    &stubSettingsRepo{policy: &policy},
	}
	f.useCase = NewUseCase(
		f.appointmentRepo,
		f.blockRepo,
		f.holidayRepo,
		f.settingsRepo,
		passthroughTxManager{},
		noopLogger{},
	)
	f.useCase.timeProvider = fixedTimeProvider{now: now}
	return f
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// 2024-05-15 is a Wednesday.
var (
	testNow  = time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	weekday  = date(2024, time.May, 15)
	validReq = Request{
		CustomerName: "Maria Souza",
		Address:      "Rua das Acácias 120",
		Date:         weekday,
		StartTime:    types.TimeString("10:00"),
	}
)

func TestExecute_CreatesWithDefaultDuration(t *testing.T) {
	f := newFixture(testNow)
	req := validReq

	resp, err := f.useCase.Execute(context.Background(), &req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, domain.DefaultAppointmentDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, string(domain.AppointmentPending), resp.Status)
	_, parseErr := uuid.Parse(resp.PublicID)
	assert.NoError(t, parseErr, "public ID must be a UUID")
}

func TestExecute_RejectsMissingCustomerName(t *testing.T) {
	f := newFixture(testNow)
	req := validReq
	req.CustomerName = "  "

	_, err := f.useCase.Execute(context.Background(), &req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, f.appointmentRepo.created)
}

func TestExecute_RejectsPastDate(t *testing.T) {
	f := newFixture(testNow)
	req := validReq
	req.Date = date(2024, time.April, 30)

	_, err := f.useCase.Execute(context.Background(), &req)

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TodayIsNotPast(t *testing.T) {
	f := newFixture(time.Date(2024, time.May, 15, 8, 0, 0, 0, time.UTC))
	req := validReq

	_, err := f.useCase.Execute(context.Background(), &req)

	require.NoError(t, err)
}

func TestExecute_RejectsSunday(t *testing.T) {
	f := newFixture(testNow)
	req := validReq
	req.Date = date(2024, time.May, 19)

	_, err := f.useCase.Execute(context.Background(), &req)

	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestExecute_RejectsNationalHoliday(t *testing.T) {
	f := newFixture(time.Date(2024, time.April, 29, 9, 0, 0, 0, time.UTC))
	req := validReq
	req.Date = date(2024, time.May, 1) // Dia do Trabalho

	_, err := f.useCase.Execute(context.Background(), &req)

	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestExecute_RejectsStoreHoliday(t *testing.T) {
	f := newFixture(testNow)
	f.holidayRepo.entries = []domain.HolidayEntry{
		{Date: "2024-05-15", Name: "Aniversário da loja", Kind: domain.HolidaySpecific},
	}
	req := validReq

	_, err := f.useCase.Execute(context.Background(), &req)

	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestExecute_MalformedHolidayIsSkippedNotFatal(t *testing.T) {
	f := newFixture(testNow)
	f.holidayRepo.entries = []domain.HolidayEntry{
		{Date: "not-a-date", Name: "Quebrado", Kind: domain.HolidaySpecific},
	}
	req := validReq

	_, err := f.useCase.Execute(context.Background(), &req)

	require.NoError(t, err)
}

func TestExecute_RejectsWindowPastClosing(t *testing.T) {
	f := newFixture(testNow)
	req := validReq
	req.StartTime = types.TimeString("17:00")
	req.DurationMinutes = 90 // ends 18:30, store closes 18:00

	_, err := f.useCase.Execute(context.Background(), &req)

	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_RejectsOverlappingAppointment(t *testing.T) {
	f := newFixture(testNow)
	f.appointmentRepo.existing = []*domain.Appointment{
		{
			PublicID:        uuid.NewString(),
			Date:            weekday,
			StartTime:       types.TimeString("09:00"),
			DurationMinutes: 90, // 09:00-10:30
			Status:          domain.AppointmentConfirmed,
		},
	}
	req := validReq // 10:00-11:30

	_, err := f.useCase.Execute(context.Background(), &req)

	assert.ErrorIs(t, err, ErrScheduleConflict)
	assert.Nil(t, f.appointmentRepo.created)
}

func TestExecute_TouchingWindowsDoNotConflict(t *testing.T) {
	f := newFixture(testNow)
	f.appointmentRepo.existing = []*domain.Appointment{
		{
			PublicID:        uuid.NewString(),
			Date:            weekday,
			StartTime:       types.TimeString("09:00"),
			DurationMinutes: 60, // ends exactly at 10:00
			Status:          domain.AppointmentConfirmed,
		},
	}
	req := validReq

	_, err := f.useCase.Execute(context.Background(), &req)

	require.NoError(t, err)
}

func TestExecute_RejectsOverlappingBlock(t *testing.T) {
	f := newFixture(testNow)
	f.blockRepo.blocks = []*domain.AgendaBlock{
		{
			PublicID:  uuid.NewString(),
			Date:      weekday,
			StartTime: types.TimeString("10:30"),
			EndTime:   types.TimeString("12:00"),
			Reason:    "Reunião de equipe",
		},
	}
	req := validReq // 10:00-11:30

	_, err := f.useCase.Execute(context.Background(), &req)

	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestExecute_MissingSettingsFallsBackToDefaultPolicy(t *testing.T) {
	f := newFixture(testNow)
	f.settingsRepo.err = settingsRepo.ErrSettingsNotFound
	req := validReq

	_, err := f.useCase.Execute(context.Background(), &req)

	require.NoError(t, err)
}

func TestExecute_SaturdayAllowedWhenPolicyEnablesIt(t *testing.T) {
	f := newFixture(testNow)
	f.settingsRepo.policy = &domain.WorkingPolicy{
		WorkOnSaturdays: true,
		DayStart:        types.TimeString("08:00"),
		DayEnd:          types.TimeString("18:00"),
	}
	req := validReq
	req.Date = date(2024, time.May, 18) // Saturday

	_, err := f.useCase.Execute(context.Background(), &req)

	require.NoError(t, err)
}

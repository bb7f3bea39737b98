package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	appointmentRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/appointment"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

const currentPublicID = "7a6f3c8e-2d4b-4f1a-9c5e-8b7d6a5f4e3d"

type stubAppointmentRepo struct {
	current       *domain.Appointment
	onTargetDay   []*domain.Appointment
	rescheduled   *domain.Appointment
	rescheduledID int64
}

func (s *stubAppointmentRepo) GetByPublicID(_ context.Context, publicID string) (*domain.Appointment, error) {
	if s.current == nil || s.current.PublicID != publicID {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *s.current
	return &copied, nil
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AgendaFilter) ([]*domain.Appointment, error) {
	return s.onTargetDay, nil
}

func (s *stubAppointmentRepo) Reschedule(_ context.Context, id int64, appointment *domain.Appointment) error {
	s.rescheduledID = id
	s.rescheduled = appointment
	return nil
}

type stubBlockRepo struct{}

func (stubBlockRepo) GetByDateRange(_ context.Context, _, _ time.Time) ([]*domain.AgendaBlock, error) {
	return nil, nil
}

type stubHolidayRepo struct{}

func (stubHolidayRepo) GetAll(_ context.Context) ([]domain.HolidayEntry, error) {
	return nil, nil
}

type stubSettingsRepo struct{}

func (stubSettingsRepo) GetWorkingPolicy(_ context.Context) (*domain.WorkingPolicy, error) {
	policy := domain.DefaultWorkingPolicy()
	return &policy, nil
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

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newFixture(current *domain.Appointment) (*UseCase, *stubAppointmentRepo) {
	repo := &stubAppointmentRepo{current: current}
	uc := NewUseCase(repo, stubBlockRepo{}, stubHolidayRepo{}, stubSettingsRepo{}, passthroughTxManager{}, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)}
	return uc, repo
}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		PublicID:        currentPublicID,
		CustomerName:    "João Pereira",
		Address:         "Av. Brasil 500",
		Date:            date(2024, time.May, 14),
		StartTime:       types.TimeString("09:00"),
		DurationMinutes: 90,
		Status:          domain.AppointmentPending,
	}
}

func TestExecute_MovesAppointment(t *testing.T) {
	uc, repo := newFixture(pendingAppointment())
	req := &Request{
		PublicID:     currentPublicID,
		NewDate:      date(2024, time.May, 16),
		NewStartTime: types.TimeString("14:00"),
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.rescheduledID)
	assert.Equal(t, date(2024, time.May, 16), resp.Date)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, 90, resp.DurationMinutes, "nil duration keeps the current one")
}

func TestExecute_OverridesDuration(t *testing.T) {
	uc, _ := newFixture(pendingAppointment())
	req := &Request{
		PublicID:        currentPublicID,
		NewDate:         date(2024, time.May, 16),
		NewStartTime:    types.TimeString("14:00"),
		DurationMinutes: ptr.Ptr(60),
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_UnknownPublicID(t *testing.T) {
	uc, _ := newFixture(pendingAppointment())
	req := &Request{
		PublicID:     "0f0e0d0c-0b0a-4990-8877-665544332211",
		NewDate:      date(2024, time.May, 16),
		NewStartTime: types.TimeString("14:00"),
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_MalformedPublicID(t *testing.T) {
	uc, _ := newFixture(pendingAppointment())
	req := &Request{
		PublicID:     "not-a-uuid",
		NewDate:      date(2024, time.May, 16),
		NewStartTime: types.TimeString("14:00"),
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CancelledAppointmentCannotMove(t *testing.T) {
	cancelled := pendingAppointment()
	cancelled.Status = domain.AppointmentCancelled
	uc, repo := newFixture(cancelled)
	req := &Request{
		PublicID:     currentPublicID,
		NewDate:      date(2024, time.May, 16),
		NewStartTime: types.TimeString("14:00"),
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCannotReschedule)
	assert.Nil(t, repo.rescheduled)
}

func TestExecute_NewDateMustBeWorkingDay(t *testing.T) {
	uc, _ := newFixture(pendingAppointment())
	req := &Request{
		PublicID:     currentPublicID,
		NewDate:      date(2024, time.May, 18), // Saturday
		NewStartTime: types.TimeString("14:00"),
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestExecute_OwnIntervalIsExcludedFromConflictCheck(t *testing.T) {
	current := pendingAppointment()
	uc, repo := newFixture(current)
	// The appointment itself is on the target day; moving it half an hour
	// later overlaps its old window, which must not count as a conflict.
	repo.onTargetDay = []*domain.Appointment{current}
	req := &Request{
		PublicID:     currentPublicID,
		NewDate:      current.Date,
		NewStartTime: types.TimeString("09:30"),
	}

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_ConflictWithAnotherAppointment(t *testing.T) {
	current := pendingAppointment()
	uc, repo := newFixture(current)
	repo.onTargetDay = []*domain.Appointment{
		{
			PublicID:        "11111111-2222-4333-8444-555566667777",
			Date:            date(2024, time.May, 16),
			StartTime:       types.TimeString("13:30"),
			DurationMinutes: 60,
			Status:          domain.AppointmentConfirmed,
		},
	}
	req := &Request{
		PublicID:     currentPublicID,
		NewDate:      date(2024, time.May, 16),
		NewStartTime: types.TimeString("14:00"),
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrScheduleConflict)
	assert.Nil(t, repo.rescheduled)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc, _ := newFixture(pendingAppointment())
	req := &Request{
		PublicID:     currentPublicID,
		NewDate:      date(2024, time.April, 25),
		NewStartTime: types.TimeString("14:00"),
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
}

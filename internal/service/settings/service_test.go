package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/settings/models"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

type stubSettingsRepo struct {
	policy *domain.WorkingPolicy
	err    error
	saved  *domain.WorkingPolicy
}

func (s *stubSettingsRepo) GetWorkingPolicy(_ context.Context) (*domain.WorkingPolicy, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.policy, nil
}

func (s *stubSettingsRepo) SaveWorkingPolicy(_ context.Context, policy domain.WorkingPolicy) error {
	s.saved = &policy
	return nil
}

type stubHolidayRepo struct {
	entries  []domain.HolidayEntry
	replaced []domain.HolidayEntry
}

func (s *stubHolidayRepo) GetAll(_ context.Context) ([]domain.HolidayEntry, error) {
	return s.entries, nil
}

func (s *stubHolidayRepo) ReplaceAll(_ context.Context, entries []domain.HolidayEntry) error {
	s.replaced = entries
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(settings *stubSettingsRepo, holidays *stubHolidayRepo) *Service {
	return NewService(settings, holidays, passthroughTxManager{}, noopLogger{})
}

func TestGetSettings_FallsBackToDefaults(t *testing.T) {
	svc := newService(&stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, &stubHolidayRepo{})

	resp, err := svc.GetSettings(context.Background())

	require.NoError(t, err)
	assert.False(t, resp.WorkOnSaturdays)
	assert.False(t, resp.WorkOnSundays)
	assert.Equal(t, domain.DefaultDayStart, resp.DayStart)
	assert.Equal(t, domain.DefaultDayEnd, resp.DayEnd)
}

func TestGetSettings_ReturnsSavedPolicy(t *testing.T) {
	svc := newService(&stubSettingsRepo{
		policy: &domain.WorkingPolicy{
			WorkOnSaturdays: true,
			DayStart:        types.TimeString("09:00"),
			DayEnd:          types.TimeString("19:00"),
		},
	}, &stubHolidayRepo{})

	resp, err := svc.GetSettings(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.WorkOnSaturdays)
	assert.Equal(t, "09:00", resp.DayStart)
}

func TestUpdateSettings(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := newService(repo, &stubHolidayRepo{})

	resp, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		WorkOnSaturdays: true,
		WorkOnSundays:   false,
		DayStart:        types.TimeString("09:00"),
		DayEnd:          types.TimeString("17:00"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.saved)
	assert.True(t, repo.saved.WorkOnSaturdays)
	assert.Equal(t, "09:00", resp.DayStart)
}

func TestUpdateSettings_RejectsInvertedHours(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := newService(repo, &stubHolidayRepo{})

	_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		DayStart: types.TimeString("18:00"),
		DayEnd:   types.TimeString("08:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.saved)
}

func TestUpdateSettings_RejectsMalformedTime(t *testing.T) {
	svc := newService(&stubSettingsRepo{}, &stubHolidayRepo{})

	_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		DayStart: types.TimeString("8h00"),
		DayEnd:   types.TimeString("18:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListHolidays(t *testing.T) {
	svc := newService(&stubSettingsRepo{}, &stubHolidayRepo{
		entries: []domain.HolidayEntry{
			{Date: "06-12", Name: "Aniversário da cidade", Kind: domain.HolidayFixed},
		},
	})

	resp, err := svc.ListHolidays(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Holidays, 1)
	assert.Equal(t, "06-12", resp.Holidays[0].Date)
}

func TestReplaceHolidays(t *testing.T) {
	holidays := &stubHolidayRepo{}
	svc := newService(&stubSettingsRepo{}, holidays)

	resp, err := svc.ReplaceHolidays(context.Background(), &models.ReplaceHolidaysRequest{
		Holidays: []models.HolidayInput{
			{Date: "06-12", Name: "Aniversário da cidade", Kind: "fixed"},
			{Date: "02-13", Name: "Carnaval", Kind: "specific", Year: ptr.Ptr(2024)},
		},
	})

	require.NoError(t, err)
	require.Len(t, holidays.replaced, 2)
	assert.Equal(t, domain.HolidayFixed, holidays.replaced[0].Kind)
	assert.Len(t, resp.Holidays, 2)
}

func TestReplaceHolidays_EmptyListClearsTable(t *testing.T) {
	holidays := &stubHolidayRepo{
		entries: []domain.HolidayEntry{{Date: "06-12", Name: "A", Kind: domain.HolidayFixed}},
	}
	svc := newService(&stubSettingsRepo{}, holidays)

	resp, err := svc.ReplaceHolidays(context.Background(), &models.ReplaceHolidaysRequest{})

	require.NoError(t, err)
	assert.NotNil(t, holidays.replaced)
	assert.Empty(t, resp.Holidays)
}

func TestReplaceHolidays_UnknownKindRejected(t *testing.T) {
	holidays := &stubHolidayRepo{}
	svc := newService(&stubSettingsRepo{}, holidays)

	_, err := svc.ReplaceHolidays(context.Background(), &models.ReplaceHolidaysRequest{
		Holidays: []models.HolidayInput{
			{Date: "06-12", Name: "A", Kind: "movable"},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, holidays.replaced)
}

func TestReplaceHolidays_MissingNameRejected(t *testing.T) {
	svc := newService(&stubSettingsRepo{}, &stubHolidayRepo{})

	_, err := svc.ReplaceHolidays(context.Background(), &models.ReplaceHolidaysRequest{
		Holidays: []models.HolidayInput{
			{Date: "06-12", Kind: "fixed"},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
)

func TestApplyStatus_ForecastRequiresDate(t *testing.T) {
	_, err := ApplyStatus(SchedulingRecord{Status: StatusUnscheduled}, StatusForecast, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplyStatus_ConfirmedRequiresDate(t *testing.T) {
	_, err := ApplyStatus(SchedulingRecord{Status: StatusForecast}, StatusConfirmed, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplyStatus_ConfirmedSetsBothDates(t *testing.T) {
	chosen := date(2024, time.May, 10)

	next, err := ApplyStatus(SchedulingRecord{Status: StatusForecast}, StatusConfirmed, &chosen)

	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, next.Status)
	require.NotNil(t, next.ForecastDate)
	require.NotNil(t, next.ScheduledDate)
	assert.Equal(t, chosen, *next.ForecastDate, "forecast stays in sync with the confirmed date")
	assert.Equal(t, chosen, *next.ScheduledDate)
}

func TestApplyStatus_ForecastClearsScheduledDate(t *testing.T) {
	confirmed := date(2024, time.May, 10)
	newForecast := date(2024, time.May, 20)
	current := SchedulingRecord{
		Status:        StatusConfirmed,
		ForecastDate:  &confirmed,
		ScheduledDate: &confirmed,
	}

	next, err := ApplyStatus(current, StatusForecast, &newForecast)

	require.NoError(t, err)
	assert.Equal(t, StatusForecast, next.Status)
	assert.Equal(t, newForecast, *next.ForecastDate)
	assert.Nil(t, next.ScheduledDate)
}

func TestApplyStatus_UnscheduledClearsDates(t *testing.T) {
	confirmed := date(2024, time.May, 10)
	current := SchedulingRecord{
		Status:        StatusConfirmed,
		ForecastDate:  &confirmed,
		ScheduledDate: &confirmed,
		TeamID:        ptr.Ptr(int64(3)),
		TeamName:      ptr.Ptr("Equipe A"),
	}

	next, err := ApplyStatus(current, StatusUnscheduled, nil)

	require.NoError(t, err)
	assert.Nil(t, next.ForecastDate)
	assert.Nil(t, next.ScheduledDate)
	assert.Equal(t, current.TeamID, next.TeamID, "cancel leaves the team assignment alone")
}

func TestApplyStatus_DoneKeepsConfirmedDate(t *testing.T) {
	confirmed := date(2024, time.May, 10)
	current := SchedulingRecord{
		Status:        StatusConfirmed,
		ForecastDate:  &confirmed,
		ScheduledDate: &confirmed,
	}

	next, err := ApplyStatus(current, StatusDone, nil)

	require.NoError(t, err)
	assert.Equal(t, StatusDone, next.Status)
	assert.Equal(t, confirmed, *next.ScheduledDate)
}

func TestApplyStatus_DoneWithoutConfirmationRejected(t *testing.T) {
	_, err := ApplyStatus(SchedulingRecord{Status: StatusForecast}, StatusDone, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplyStatus_ReopenFromDone(t *testing.T) {
	confirmed := date(2024, time.May, 10)
	current := SchedulingRecord{
		Status:        StatusDone,
		ForecastDate:  &confirmed,
		ScheduledDate: &confirmed,
	}

	next, err := ApplyStatus(current, StatusUnscheduled, nil)

	require.NoError(t, err)
	assert.Equal(t, StatusUnscheduled, next.Status)
	assert.Nil(t, next.ScheduledDate)
}

func TestApplyStatus_UnknownStatusRejected(t *testing.T) {
	_, err := ApplyStatus(SchedulingRecord{}, SchedulingStatus("paused"), nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplyStatus_DoesNotMutateCurrent(t *testing.T) {
	forecast := date(2024, time.May, 1)
	current := SchedulingRecord{Status: StatusForecast, ForecastDate: &forecast}
	chosen := date(2024, time.May, 10)

	_, err := ApplyStatus(current, StatusConfirmed, &chosen)

	require.NoError(t, err)
	assert.Equal(t, forecast, *current.ForecastDate)
	assert.Nil(t, current.ScheduledDate)
}

func TestDeriveStatus(t *testing.T) {
	d := date(2024, time.May, 10)

	assert.Equal(t, StatusUnscheduled, DeriveStatus(nil, nil, false))
	assert.Equal(t, StatusForecast, DeriveStatus(&d, nil, false))
	assert.Equal(t, StatusConfirmed, DeriveStatus(&d, &d, false))
	assert.Equal(t, StatusDone, DeriveStatus(&d, &d, true))
	assert.Equal(t, StatusUnscheduled, DeriveStatus(nil, nil, true), "done flag without a date means nothing")
}

func TestTeamAssignmentOrthogonalToStatus(t *testing.T) {
	record := SchedulingRecord{Status: StatusForecast, ForecastDate: ptr.Ptr(date(2024, time.May, 1))}

	assigned := record.AssignTeam(7, "Equipe B")
	assert.Equal(t, StatusForecast, assigned.Status)
	assert.Equal(t, int64(7), *assigned.TeamID)
	assert.Equal(t, "Equipe B", *assigned.TeamName)

	cleared := assigned.ClearTeam()
	assert.Equal(t, StatusForecast, cleared.Status)
	assert.Nil(t, cleared.TeamID)
	assert.NotNil(t, cleared.ForecastDate, "clearing the team must not alter dates")
}

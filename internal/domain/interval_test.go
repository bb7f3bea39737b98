package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(startHour, startMin, endHour, endMin int, sourceID string) Interval {
	day := date(2024, time.March, 11)
	return Interval{
		Start:    day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:      day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
		SourceID: sourceID,
		Source:   SourceAppointment,
	}
}

func TestHasConflict_Overlap(t *testing.T) {
	existing := []Interval{interval(9, 30, 10, 30, "b")}

	got, err := HasConflict(interval(9, 0, 10, 0, "a"), existing, "")

	require.NoError(t, err)
	assert.True(t, got)
}

func TestHasConflict_BoundaryTouchIsNotOverlap(t *testing.T) {
	existing := []Interval{interval(10, 0, 11, 0, "b")}

	got, err := HasConflict(interval(9, 0, 10, 0, "a"), existing, "")

	require.NoError(t, err)
	assert.False(t, got, "back-to-back intervals do not conflict")
}

func TestHasConflict_Containment(t *testing.T) {
	existing := []Interval{interval(8, 0, 18, 0, "block")}

	got, err := HasConflict(interval(10, 0, 10, 30, "a"), existing, "")

	require.NoError(t, err)
	assert.True(t, got)
}

func TestHasConflict_ExcludeSelf(t *testing.T) {
	unchanged := interval(9, 0, 10, 0, "edit-me")
	existing := []Interval{unchanged, interval(14, 0, 15, 0, "other")}

	got, err := HasConflict(unchanged, existing, "edit-me")

	require.NoError(t, err)
	assert.False(t, got, "editing an appointment must not conflict with itself")
}

func TestHasConflict_OrderIndependent(t *testing.T) {
	candidate := interval(9, 45, 10, 15, "c")
	a := interval(9, 0, 10, 0, "a")
	b := interval(12, 0, 13, 0, "b")

	got1, err := HasConflict(candidate, []Interval{a, b}, "")
	require.NoError(t, err)
	got2, err := HasConflict(candidate, []Interval{b, a}, "")
	require.NoError(t, err)

	assert.Equal(t, got1, got2)
	assert.True(t, got1)
}

func TestHasConflict_DegenerateCandidateRejected(t *testing.T) {
	degenerate := interval(10, 0, 10, 0, "zero")

	_, err := HasConflict(degenerate, nil, "")

	assert.ErrorIs(t, err, ErrDegenerateInterval)
}

func TestHasConflict_DegenerateExistingRejected(t *testing.T) {
	existing := []Interval{interval(11, 0, 10, 0, "negative")}

	_, err := HasConflict(interval(9, 0, 10, 0, "a"), existing, "")

	assert.ErrorIs(t, err, ErrDegenerateInterval)
}

func TestFindConflicts_ReturnsEveryOverlap(t *testing.T) {
	candidate := interval(9, 0, 12, 0, "c")
	existing := []Interval{
		interval(8, 0, 9, 30, "a"),
		interval(10, 0, 11, 0, "b"),
		interval(12, 0, 13, 0, "after"),
	}

	conflicts, err := FindConflicts(candidate, existing, "")

	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, "a", conflicts[0].SourceID)
	assert.Equal(t, "b", conflicts[1].SourceID)
}

func TestHolidayWindow_CoversWholeDay(t *testing.T) {
	window := HolidayWindow(date(2024, time.December, 25))

	assert.Equal(t, date(2024, time.December, 25), window.Start)
	assert.Equal(t, date(2024, time.December, 26), window.End)
	assert.Equal(t, SourceHoliday, window.Source)

	// An appointment anywhere on the holiday conflicts with the window.
	appt := Interval{
		Start:    date(2024, time.December, 25).Add(15 * time.Hour),
		End:      date(2024, time.December, 25).Add(16 * time.Hour),
		SourceID: "a",
		Source:   SourceAppointment,
	}
	assert.True(t, appt.Overlaps(window))
}

package domain

import (
	"errors"
	"fmt"
	"time"
)

// HolidayKind distinguishes recurring holidays from single occurrences.
type HolidayKind string

const (
	// HolidayFixed recurs every year at the same month-day.
	HolidayFixed HolidayKind = "fixed"
	// HolidaySpecific applies to a single date only.
	HolidaySpecific HolidayKind = "specific"
)

// FixedHoliday is an annual holiday identified by its month-day.
type FixedHoliday struct {
	MonthDay string // MM-DD
	Name     string
}

// HolidayEntry is a store-configured holiday as it comes from storage.
// Fixed entries carry an MM-DD date; specific entries carry either a full
// YYYY-MM-DD date or an MM-DD date plus an explicit year.
type HolidayEntry struct {
	Date string
	Name string
	Kind HolidayKind
	Year *int
}

// HolidaySet is a resolved set of concrete non-working dates, keyed by
// YYYY-MM-DD. Membership is the only operation the calendar calculus needs.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a set from concrete dates; time-of-day is ignored.
func NewHolidaySet(days ...time.Time) HolidaySet {
	set := make(HolidaySet, len(days))
	for _, day := range days {
		set.Add(day)
	}
	return set
}

// Add inserts the calendar date of day into the set.
func (s HolidaySet) Add(day time.Time) {
	s[day.Format(DateFormat)] = struct{}{}
}

// Contains reports whether the calendar date of day is a holiday.
func (s HolidaySet) Contains(day time.Time) bool {
	_, ok := s[day.Format(DateFormat)]
	return ok
}

// ErrMalformedHolidayEntry marks a holiday record whose date cannot be parsed.
// The resolver skips such records; one bad entry must not blank out deadline
// computation for the whole system.
var ErrMalformedHolidayEntry = errors.New("domain: malformed holiday entry")

// SkippedHoliday reports one entry the resolver could not use, for the caller
// to log.
type SkippedHoliday struct {
	Entry  HolidayEntry
	Reason error
}

// ResolveHolidays flattens the fixed national table and the store-specific
// entries into concrete dates for every requested year. Duplicates are
// harmless since the result is a set. Malformed entries are collected, never
// fatal.
func ResolveHolidays(fixed []FixedHoliday, custom []HolidayEntry, years []int) (HolidaySet, []SkippedHoliday) {
	set := make(HolidaySet)
	var skipped []SkippedHoliday

	for _, year := range years {
		for _, holiday := range fixed {
			day, err := monthDayInYear(holiday.MonthDay, year)
			if err != nil {
				// The built-in table is validated at startup; a miss here is
				// a Feb 29 entry on a non-leap year.
				continue
			}
			set.Add(day)
		}
	}

	for _, entry := range custom {
		switch entry.Kind {
		case HolidayFixed:
			// A miss in one year (Feb 29 on a non-leap year) must not drop
			// the entry for the remaining years.
			for _, year := range years {
				day, err := monthDayInYear(entry.Date, year)
				if err != nil {
					skipped = append(skipped, SkippedHoliday{Entry: entry, Reason: err})
					continue
				}
				set.Add(day)
			}

		case HolidaySpecific:
			day, err := resolveSpecific(entry)
			if err != nil {
				skipped = append(skipped, SkippedHoliday{Entry: entry, Reason: err})
				continue
			}
			if yearNeeded(day.Year(), years) {
				set.Add(day)
			}

		default:
			skipped = append(skipped, SkippedHoliday{
				Entry:  entry,
				Reason: fmt.Errorf("%w: unknown kind %q", ErrMalformedHolidayEntry, entry.Kind),
			})
		}
	}

	return set, skipped
}

func resolveSpecific(entry HolidayEntry) (time.Time, error) {
	if day, err := time.Parse(DateFormat, entry.Date); err == nil {
		return day, nil
	}
	if entry.Year == nil {
		return time.Time{}, fmt.Errorf("%w: %q has neither a full date nor a year", ErrMalformedHolidayEntry, entry.Date)
	}
	return monthDayInYear(entry.Date, *entry.Year)
}

func monthDayInYear(monthDay string, year int) (time.Time, error) {
	parsed, err := time.Parse(MonthDayFormat, monthDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not MM-DD: %v", ErrMalformedHolidayEntry, monthDay, err)
	}
	day := time.Date(year, parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	if day.Month() != parsed.Month() {
		// Feb 29 stamped onto a non-leap year.
		return time.Time{}, fmt.Errorf("%w: %q does not exist in %d", ErrMalformedHolidayEntry, monthDay, year)
	}
	return day, nil
}

func yearNeeded(year int, years []int) bool {
	for _, y := range years {
		if y == year {
			return true
		}
	}
	return false
}

// NationalHolidays is the fixed Brazilian national holiday table. Movable
// holidays (Carnaval, Corpus Christi etc.) are configured per store as
// specific entries.
var NationalHolidays = []FixedHoliday{
	{MonthDay: "01-01", Name: "Confraternização Universal"},
	{MonthDay: "04-21", Name: "Tiradentes"},
	{MonthDay: "05-01", Name: "Dia do Trabalho"},
	{MonthDay: "09-07", Name: "Independência do Brasil"},
	{MonthDay: "10-12", Name: "Nossa Senhora Aparecida"},
	{MonthDay: "11-02", Name: "Finados"},
	{MonthDay: "11-15", Name: "Proclamação da República"},
	{MonthDay: "12-25", Name: "Natal"},
}

package domain

import "github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"

// WorkingPolicy is the store-level working-day configuration. It is resolved
// once at the boundary (settings storage or defaults) and passed explicitly
// into every calendar computation; nothing in this package holds it as state.
//
// DayStart/DayEnd are consumed only by timeline rendering (off-hours shading).
// Day counting reasons in whole calendar days.
type WorkingPolicy struct {
	WorkOnSaturdays bool
	WorkOnSundays   bool
	DayStart        types.TimeString
	DayEnd          types.TimeString
}

// DefaultWorkingPolicy returns the policy used when the store has not saved
// scheduling settings yet: Monday-to-Friday, 08:00-18:00.
func DefaultWorkingPolicy() WorkingPolicy {
	return WorkingPolicy{
		WorkOnSaturdays: false,
		WorkOnSundays:   false,
		DayStart:        types.TimeString(DefaultDayStart),
		DayEnd:          types.TimeString(DefaultDayEnd),
	}
}

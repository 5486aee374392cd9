package availability

import "time"

// Rules is the booking policy for one equipment category: how long a booking
// must be, on which grid it may start, and the daily operating window.
// Minutes from midnight are used for the window so the rules stay independent
// of any particular day or timezone.
type Rules struct {
	MinDurationMinutes int
	IncrementMinutes   int
	MaxDurationMinutes int
	OpenMinute         int
	CloseMinute        int
}

// defaultRules applies to padel courts and to any category missing from the
// table: 60 min minimum, 30 min steps, 4 h maximum, open 08:00-22:00.
var defaultRules = Rules{
	MinDurationMinutes: 60,
	IncrementMinutes:   30,
	MaxDurationMinutes: 240,
	OpenMinute:         8 * 60,
	CloseMinute:        22 * 60,
}

var rulesByCategory = map[Category]Rules{
	CategoryPadel: defaultRules,
	CategoryTennis: {
		MinDurationMinutes: 60,
		IncrementMinutes:   30,
		MaxDurationMinutes: 180,
		OpenMinute:         8 * 60,
		CloseMinute:        22 * 60,
	},
	CategoryCardio: {
		MinDurationMinutes: 30,
		IncrementMinutes:   15,
		MaxDurationMinutes: 120,
		OpenMinute:         6 * 60,
		CloseMinute:        22 * 60,
	},
	CategoryStrength: {
		MinDurationMinutes: 30,
		IncrementMinutes:   30,
		MaxDurationMinutes: 180,
		OpenMinute:         6 * 60,
		CloseMinute:        22 * 60,
	},
}

// RulesFor returns the booking rules for a category. Unknown categories fall
// back to the default padel rules.
func RulesFor(c Category) Rules {
	if r, ok := rulesByCategory[c]; ok {
		return r
	}
	return defaultRules
}

// WindowOn anchors the operating window to a concrete day. The returned
// interval uses the day's location, so callers control the business timezone
// by constructing day in it.
func (r Rules) WindowOn(day time.Time) Interval {
	y, m, d := day.Date()
	loc := day.Location()
	return Interval{
		Start: time.Date(y, m, d, r.OpenMinute/60, r.OpenMinute%60, 0, 0, loc),
		End:   time.Date(y, m, d, r.CloseMinute/60, r.CloseMinute%60, 0, 0, loc),
	}
}

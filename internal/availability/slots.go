package availability

import "time"

// Slot is one bookable (start, end, duration) combination.
type Slot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// GenerateCandidates enumerates every slot the rules allow on the given day,
// before any busy time is taken into account: each start on the increment
// grid within operating hours, each duration from the minimum to the maximum
// in increment steps, as long as the slot ends by closing time.
//
// Slots come out ordered by start time, then by duration, so the caller can
// group them by start time without re-sorting. Misconfigured rules (minimum
// above maximum, or a non-positive increment) yield an empty result rather
// than an error.
func GenerateCandidates(day time.Time, r Rules) []Slot {
	if r.IncrementMinutes <= 0 || r.MinDurationMinutes <= 0 {
		return nil
	}
	if r.MinDurationMinutes > r.MaxDurationMinutes {
		return nil
	}

	window := r.WindowOn(day)
	step := time.Duration(r.IncrementMinutes) * time.Minute

	var slots []Slot
	for start := window.Start; start.Before(window.End); start = start.Add(step) {
		for d := r.MinDurationMinutes; d <= r.MaxDurationMinutes; d += r.IncrementMinutes {
			end := start.Add(time.Duration(d) * time.Minute)
			if end.After(window.End) {
				break
			}
			slots = append(slots, Slot{Start: start, End: end, DurationMinutes: d})
		}
	}
	return slots
}

package availability

import "time"

// ResourceText is the textual part of a resource the classifier needs.
type ResourceText struct {
	Name        string
	Description string
}

// Resolve computes the bookable slots for one resource on one day. It is the
// externally-consumed entry point of this package and performs no I/O: the
// caller supplies the raw reservation and blackout rows it fetched for the
// same (resource, day) pair.
//
// The pipeline: classify the resource, look up its rules, enumerate candidate
// slots, merge the busy timeline, subtract it from the operating window, then
// keep only candidates that fit entirely inside a single free interval. When
// day is the current calendar day (in day's location), slots that would start
// at or before now are dropped as well.
//
// No availability is a normal outcome: the result is simply empty.
func Resolve(day, now time.Time, res ResourceText, reservations []Reservation, blocks []Interval) []Slot {
	rules := RulesFor(Classify(res.Name, res.Description))
	window := rules.WindowOn(day)

	busy := MergeBusy(reservations, blocks, window)
	free := FreeIntervals(window, busy)
	if len(free) == 0 {
		return nil
	}

	sameDay := isSameDay(day, now)

	var available []Slot
	for _, slot := range GenerateCandidates(day, rules) {
		if sameDay && !slot.Start.After(now) {
			continue
		}
		span := Interval{Start: slot.Start, End: slot.End}
		for _, f := range free {
			if f.contains(span) {
				available = append(available, slot)
				break
			}
		}
	}
	return available
}

// isSameDay compares calendar days in day's location, so "today" follows the
// business timezone the caller anchored day to.
func isSameDay(day, now time.Time) bool {
	y1, m1, d1 := day.Date()
	y2, m2, d2 := now.In(day.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

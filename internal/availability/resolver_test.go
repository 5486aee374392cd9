package availability

import (
	"testing"
	"time"
)

var padelCourt = ResourceText{Name: "Padel 1", Description: "terrain couvert"}

func slotAt(slots []Slot, start time.Time, durationMinutes int) bool {
	for _, s := range slots {
		if s.Start.Equal(start) && s.DurationMinutes == durationMinutes {
			return true
		}
	}
	return false
}

func TestResolveScenario(t *testing.T) {
	// Operating hours 08:00-22:00, one confirmed reservation 10:00-11:30 and
	// one maintenance block 14:00-14:30 on a padel court (60 min minimum,
	// 30 min increment).
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := d.AddDate(0, 0, -1) // not today, no past-time filtering

	reservations := []Reservation{
		{Start: day(10, 0), End: day(11, 30), Status: "confirmed"},
	}
	blocks := []Interval{{Start: day(14, 0), End: day(14, 30)}}

	slots := Resolve(d, now, padelCourt, reservations, blocks)
	if len(slots) == 0 {
		t.Fatal("expected available slots")
	}

	if slotAt(slots, day(10, 0), 60) {
		t.Error("slot 10:00/60min overlaps the reservation and must be absent")
	}
	if !slotAt(slots, day(9, 0), 60) {
		t.Error("slot 09:00/60min ends as the reservation starts and must be present")
	}
	for _, s := range slots {
		if !s.Start.Before(day(14, 30)) {
			continue
		}
		if s.End.After(day(14, 0)) {
			t.Errorf("slot %+v intersects the maintenance block", s)
		}
	}
}

func TestResolveContainment(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := d.AddDate(0, 0, -1)

	reservations := []Reservation{
		{Start: day(9, 0), End: day(10, 0), Status: "pending"},
		{Start: day(17, 30), End: day(19, 0), Status: "confirmed"},
	}
	blocks := []Interval{{Start: day(12, 0), End: day(13, 15)}}

	window := RulesFor(CategoryPadel).WindowOn(d)
	busy := MergeBusy(reservations, blocks, window)

	for _, s := range Resolve(d, now, padelCourt, reservations, blocks) {
		if s.Start.Before(window.Start) || s.End.After(window.End) {
			t.Errorf("slot %+v escapes the operating window", s)
		}
		for _, b := range busy {
			if s.Start.Before(b.End) && b.Start.Before(s.End) {
				t.Errorf("slot %+v intersects busy interval %+v", s, b)
			}
		}
	}
}

func TestResolveExactCoverExcluded(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := d.AddDate(0, 0, -1)

	// Reserve exactly the 15:00/90min slot; neither it nor any overlapping
	// candidate may come back.
	reservations := []Reservation{
		{Start: day(15, 0), End: day(16, 30), Status: "confirmed"},
	}

	for _, s := range Resolve(d, now, padelCourt, reservations, nil) {
		if s.Start.Before(day(16, 30)) && s.End.After(day(15, 0)) {
			t.Errorf("slot %+v overlaps the reserved span", s)
		}
	}
}

func TestResolvePastTimeExclusion(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := day(15, 20) // mid-afternoon the same day

	slots := Resolve(d, now, padelCourt, nil, nil)
	if len(slots) == 0 {
		t.Fatal("expected evening slots to remain")
	}
	for _, s := range slots {
		if !s.Start.After(now) {
			t.Errorf("slot %+v starts at or before now (%v)", s, now)
		}
	}
}

func TestResolveCancelledTransparency(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := d.AddDate(0, 0, -1)

	cancelled := []Reservation{
		{Start: day(10, 0), End: day(12, 0), Status: StatusCancelled},
	}

	withCancelled := Resolve(d, now, padelCourt, cancelled, nil)
	withNone := Resolve(d, now, padelCourt, nil, nil)

	if len(withCancelled) != len(withNone) {
		t.Fatalf("cancelled reservation changed the result: %d vs %d slots", len(withCancelled), len(withNone))
	}
	for i := range withNone {
		if !withCancelled[i].Start.Equal(withNone[i].Start) || withCancelled[i].DurationMinutes != withNone[i].DurationMinutes {
			t.Errorf("slot %d differs: %+v vs %+v", i, withCancelled[i], withNone[i])
		}
	}
}

func TestResolveFullyBookedDay(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := d.AddDate(0, 0, -1)

	reservations := []Reservation{
		{Start: day(8, 0), End: day(22, 0), Status: "confirmed"},
	}

	if slots := Resolve(d, now, padelCourt, reservations, nil); len(slots) != 0 {
		t.Errorf("fully booked day returned %d slots", len(slots))
	}
}

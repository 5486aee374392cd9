package availability

import (
	"testing"
	"time"
)

func TestGenerateCandidatesOrdering(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rules := Rules{
		MinDurationMinutes: 60,
		IncrementMinutes:   30,
		MaxDurationMinutes: 120,
		OpenMinute:         8 * 60,
		CloseMinute:        10 * 60,
	}

	got := GenerateCandidates(d, rules)

	// 08:00 fits 60/90/120, 08:30 fits 60/90, 09:00 fits 60.
	want := []Slot{
		{Start: day(8, 0), End: day(9, 0), DurationMinutes: 60},
		{Start: day(8, 0), End: day(9, 30), DurationMinutes: 90},
		{Start: day(8, 0), End: day(10, 0), DurationMinutes: 120},
		{Start: day(8, 30), End: day(9, 30), DurationMinutes: 60},
		{Start: day(8, 30), End: day(10, 0), DurationMinutes: 90},
		{Start: day(9, 0), End: day(10, 0), DurationMinutes: 60},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d slots, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) || got[i].DurationMinutes != want[i].DurationMinutes {
			t.Errorf("slot %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGenerateCandidatesFullDayCount(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	got := GenerateCandidates(d, RulesFor(CategoryPadel))

	// 14h window on a 30-min grid with durations 60..240 step 30: the grid has
	// hundreds of pairs and every one must end by closing time.
	if len(got) < 100 {
		t.Fatalf("expected a combinatorial slot grid, got only %d slots", len(got))
	}
	closeAt := day(22, 0)
	for _, s := range got {
		if s.End.After(closeAt) {
			t.Errorf("slot %+v ends after closing time", s)
		}
		if s.End.Sub(s.Start) != time.Duration(s.DurationMinutes)*time.Minute {
			t.Errorf("slot %+v duration mismatch", s)
		}
	}
}

func TestGenerateCandidatesMisconfigured(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		rules Rules
	}{
		{"minimum above maximum", Rules{MinDurationMinutes: 120, IncrementMinutes: 30, MaxDurationMinutes: 60, OpenMinute: 480, CloseMinute: 1320}},
		{"zero increment", Rules{MinDurationMinutes: 60, IncrementMinutes: 0, MaxDurationMinutes: 120, OpenMinute: 480, CloseMinute: 1320}},
		{"zero minimum", Rules{MinDurationMinutes: 0, IncrementMinutes: 30, MaxDurationMinutes: 120, OpenMinute: 480, CloseMinute: 1320}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateCandidates(d, tt.rules); got != nil {
				t.Errorf("GenerateCandidates() = %v, want empty", got)
			}
		})
	}
}

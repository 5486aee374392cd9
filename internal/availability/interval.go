package availability

import (
	"sort"
	"strings"
	"time"
)

// StatusCancelled marks reservation rows that must not block any time.
const StatusCancelled = "cancelled"

// Interval is a half-open time span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Reservation is the minimal view of a stored booking row the core needs:
// when it occupies the resource and whether it still counts.
type Reservation struct {
	Start  time.Time
	End    time.Time
	Status string
}

// clip restricts the interval to the window. The second return value is false
// when nothing of the interval remains inside the window, or when the input
// was degenerate (start >= end) to begin with.
func (iv Interval) clip(window Interval) (Interval, bool) {
	if !iv.Start.Before(iv.End) {
		return Interval{}, false
	}
	if iv.Start.Before(window.Start) {
		iv.Start = window.Start
	}
	if iv.End.After(window.End) {
		iv.End = window.End
	}
	if !iv.Start.Before(iv.End) {
		return Interval{}, false
	}
	return iv, true
}

// contains reports whether other lies entirely within iv.
func (iv Interval) contains(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

// MergeBusy builds the busy timeline for one resource and day. Cancelled
// reservations are ignored, every surviving span is clipped to the operating
// window, rows that end up empty or were non-chronological are dropped, and
// the rest is sorted and coalesced into a minimal non-overlapping cover.
// Adjacent touching intervals are merged into one.
func MergeBusy(reservations []Reservation, blocks []Interval, window Interval) []Interval {
	var clipped []Interval
	for _, r := range reservations {
		if strings.EqualFold(r.Status, StatusCancelled) {
			continue
		}
		if iv, ok := (Interval{Start: r.Start, End: r.End}).clip(window); ok {
			clipped = append(clipped, iv)
		}
	}
	for _, b := range blocks {
		if iv, ok := b.clip(window); ok {
			clipped = append(clipped, iv)
		}
	}
	if len(clipped) == 0 {
		return nil
	}

	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].Start.Before(clipped[j].Start)
	})

	merged := []Interval{clipped[0]}
	for _, iv := range clipped[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// FreeIntervals subtracts a merged busy timeline from the operating window,
// returning the gaps left over. busy must be sorted and non-overlapping, as
// produced by MergeBusy. An empty busy timeline yields the whole window.
func FreeIntervals(window Interval, busy []Interval) []Interval {
	if !window.Start.Before(window.End) {
		return nil
	}

	var free []Interval
	cursor := window.Start
	for _, b := range busy {
		if b.Start.After(cursor) {
			free = append(free, Interval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(window.End) {
		free = append(free, Interval{Start: cursor, End: window.End})
	}
	return free
}

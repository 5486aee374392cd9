package availability

import (
	"reflect"
	"testing"
	"time"
)

func day(h, m int) time.Time {
	return time.Date(2026, 3, 14, h, m, 0, 0, time.UTC)
}

func TestMergeBusy(t *testing.T) {
	window := Interval{Start: day(8, 0), End: day(22, 0)}

	tests := []struct {
		name         string
		reservations []Reservation
		blocks       []Interval
		want         []Interval
	}{
		{
			name: "empty input yields empty result",
		},
		{
			name: "cancelled reservations are ignored",
			reservations: []Reservation{
				{Start: day(10, 0), End: day(11, 0), Status: StatusCancelled},
				{Start: day(14, 0), End: day(15, 0), Status: "Cancelled"},
			},
			want: nil,
		},
		{
			name: "overlapping intervals coalesce into one span",
			reservations: []Reservation{
				{Start: day(10, 0), End: day(12, 0), Status: "confirmed"},
				{Start: day(11, 0), End: day(13, 0), Status: "pending"},
			},
			want: []Interval{{Start: day(10, 0), End: day(13, 0)}},
		},
		{
			name: "touching intervals coalesce",
			reservations: []Reservation{
				{Start: day(10, 0), End: day(11, 0), Status: "confirmed"},
			},
			blocks: []Interval{{Start: day(11, 0), End: day(12, 0)}},
			want:   []Interval{{Start: day(10, 0), End: day(12, 0)}},
		},
		{
			name: "unsorted input comes out sorted",
			blocks: []Interval{
				{Start: day(18, 0), End: day(19, 0)},
				{Start: day(9, 0), End: day(10, 0)},
			},
			want: []Interval{
				{Start: day(9, 0), End: day(10, 0)},
				{Start: day(18, 0), End: day(19, 0)},
			},
		},
		{
			name: "interval outside window is dropped, partial one truncated",
			reservations: []Reservation{
				{Start: day(6, 0), End: day(7, 0), Status: "confirmed"},
				{Start: day(7, 0), End: day(9, 0), Status: "confirmed"},
				{Start: day(21, 30), End: day(23, 0), Status: "confirmed"},
			},
			want: []Interval{
				{Start: day(8, 0), End: day(9, 0)},
				{Start: day(21, 30), End: day(22, 0)},
			},
		},
		{
			name: "non-chronological rows are dropped defensively",
			reservations: []Reservation{
				{Start: day(12, 0), End: day(11, 0), Status: "confirmed"},
			},
			blocks: []Interval{{Start: day(15, 0), End: day(15, 0)}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeBusy(tt.reservations, tt.blocks, window)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeBusy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeBusyIdempotent(t *testing.T) {
	window := Interval{Start: day(8, 0), End: day(22, 0)}
	blocks := []Interval{
		{Start: day(9, 0), End: day(10, 30)},
		{Start: day(14, 0), End: day(16, 0)},
	}

	once := MergeBusy(nil, blocks, window)
	twice := MergeBusy(nil, once, window)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merging a merged timeline changed it: %v -> %v", once, twice)
	}
}

func TestFreeIntervals(t *testing.T) {
	window := Interval{Start: day(8, 0), End: day(22, 0)}

	tests := []struct {
		name string
		busy []Interval
		want []Interval
	}{
		{
			name: "no busy time frees the whole window",
			want: []Interval{window},
		},
		{
			name: "busy block in the middle splits the window",
			busy: []Interval{{Start: day(12, 0), End: day(13, 0)}},
			want: []Interval{
				{Start: day(8, 0), End: day(12, 0)},
				{Start: day(13, 0), End: day(22, 0)},
			},
		},
		{
			name: "busy timeline covering the window leaves nothing",
			busy: []Interval{window},
			want: nil,
		},
		{
			name: "busy blocks at both edges leave the middle",
			busy: []Interval{
				{Start: day(8, 0), End: day(10, 0)},
				{Start: day(20, 0), End: day(22, 0)},
			},
			want: []Interval{{Start: day(10, 0), End: day(20, 0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeIntervals(window, tt.busy)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FreeIntervals() = %v, want %v", got, tt.want)
			}
		})
	}
}

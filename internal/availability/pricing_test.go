package availability

import (
	"math"
	"testing"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name            string
		hourlyRate      float64
		durationMinutes int
		applyDiscount   bool
		want            int64
	}{
		{"90 minutes at 8000/h", 8000, 90, false, 12000},
		{"three hours undiscounted", 8000, 180, false, 24000},
		{"three hours with 10% tier", 8000, 180, true, 21600},
		{"two hours with 5% tier", 8000, 120, true, 15200},
		{"one hour ignores discount flag below tiers", 8000, 60, true, 8000},
		{"zero duration is free", 8000, 0, false, 0},
		{"rounds to nearest whole unit", 5000, 50, false, 4167},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.hourlyRate, tt.durationMinutes, tt.applyDiscount)
			if err != nil {
				t.Fatalf("Price() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Price() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPriceInvalidInput(t *testing.T) {
	tests := []struct {
		name            string
		hourlyRate      float64
		durationMinutes int
	}{
		{"negative rate", -1, 60},
		{"negative duration", 8000, -30},
		{"NaN rate", math.NaN(), 60},
		{"infinite rate", math.Inf(1), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Price(tt.hourlyRate, tt.durationMinutes, false); err == nil {
				t.Error("Price() accepted invalid input")
			}
		})
	}
}

func TestPriceMonotonicInDuration(t *testing.T) {
	var prev int64 = -1
	for d := 0; d <= 240; d += 30 {
		got, err := Price(8000, d, true)
		if err != nil {
			t.Fatalf("Price() error = %v", err)
		}
		if got < prev {
			t.Fatalf("price decreased from %d to %d at %d minutes", prev, got, d)
		}
		prev = got
	}
}

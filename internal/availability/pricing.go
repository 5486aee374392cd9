package availability

import (
	"errors"
	"math"
)

var ErrInvalidPriceInput = errors.New("hourly rate and duration must be non-negative finite numbers")

// Discount tiers for longer bookings, applied on request only.
const (
	discountTierMinutes10 = 180
	discountTierMinutes5  = 120
)

// Price turns an hourly rate and a duration into a total price in whole
// currency units (FCFA has no subdivision, so the result is rounded to the
// nearest integer). With applyDiscount set, bookings of two hours or more get
// 5% off and bookings of three hours or more get 10% off.
//
// Negative or non-finite inputs violate the caller contract and return
// ErrInvalidPriceInput instead of being silently coerced.
func Price(hourlyRate float64, durationMinutes int, applyDiscount bool) (int64, error) {
	if durationMinutes < 0 {
		return 0, ErrInvalidPriceInput
	}
	if hourlyRate < 0 || math.IsNaN(hourlyRate) || math.IsInf(hourlyRate, 0) {
		return 0, ErrInvalidPriceInput
	}

	total := hourlyRate * float64(durationMinutes) / 60.0
	if applyDiscount {
		switch {
		case durationMinutes >= discountTierMinutes10:
			total *= 0.90
		case durationMinutes >= discountTierMinutes5:
			total *= 0.95
		}
	}
	return int64(math.Round(total)), nil
}

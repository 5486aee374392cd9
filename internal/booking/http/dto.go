package http

import (
	"time"

	"github.com/padelarena/booking-backend/internal/booking"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	ResourceID   string    `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	Price        int64     `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		UserID:       b.UserID,
		UserName:     b.UserName,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		Price:        b.Price,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	ResourceID      string    `json:"resource_id" binding:"required,uuid"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
}

// SlotResponse is one bookable slot with its price quote. Slots arrive
// ordered by start time then duration, so the UI can group them by start.
type SlotResponse struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           int64     `json:"price"`
}

type AvailabilityResponse struct {
	ResourceID string         `json:"resource_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

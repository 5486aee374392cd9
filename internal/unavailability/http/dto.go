package http

import (
	"time"

	"github.com/padelarena/booking-backend/internal/unavailability"
)

type UnavailabilityResponse struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewUnavailabilityResponse(u *unavailability.Unavailability) UnavailabilityResponse {
	return UnavailabilityResponse{
		ID:         u.ID,
		ResourceID: u.ResourceID,
		StartTime:  u.StartTime,
		EndTime:    u.EndTime,
		Reason:     u.Reason,
		CreatedAt:  u.CreatedAt,
	}
}

type CreateUnavailabilityRequest struct {
	ResourceID string    `json:"resource_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	Reason     string    `json:"reason" binding:"omitempty,max=200"`
}

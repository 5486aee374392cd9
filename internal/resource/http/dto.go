package http

import (
	"time"

	"github.com/padelarena/booking-backend/internal/availability"
	"github.com/padelarena/booking-backend/internal/resource"
)

type ResourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HourlyRate  float64   `json:"hourly_rate"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	HasPhoto    bool      `json:"has_photo"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewResourceResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		HourlyRate:  r.HourlyRate,
		Status:      string(r.Status),
		Category:    string(availability.Classify(r.Name, r.Description)),
		HasPhoto:    r.PhotoPath != nil,
		CreatedAt:   r.CreatedAt,
	}
}

type CreateResourceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required,gte=0"`
}

type UpdateResourceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	HourlyRate  *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof=available reserved maintenance"`
}

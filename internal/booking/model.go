package booking

import (
	"net/http"
	"time"

	"github.com/padelarena/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "time slot is no longer available")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrStartTimePast     = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrSlotNotBookable   = apperror.New(http.StatusBadRequest, "requested slot does not match the booking rules for this resource")
	ErrResourceNotFound  = apperror.New(http.StatusNotFound, "resource not found")
	ErrResourceInactive  = apperror.New(http.StatusConflict, "resource is under maintenance")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
	ErrAlreadyCancelled  = apperror.New(http.StatusConflict, "booking is already cancelled")
	ErrInvalidStatusFlow = apperror.New(http.StatusConflict, "booking status cannot change this way")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID           string
	ResourceID   string
	ResourceName string
	UserID       string
	UserName     string
	StartTime    time.Time
	EndTime      time.Time
	Status       Status
	Price        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DurationMinutes is derived, never stored.
func (b *Booking) DurationMinutes() int {
	return int(b.EndTime.Sub(b.StartTime) / time.Minute)
}

// IsActive reports whether the booking still blocks its time slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

type Filter struct {
	UserID     string
	ResourceID string
	Status     string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

package unavailability

import (
	"net/http"
	"time"

	"github.com/padelarena/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "unavailability not found")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrResourceRequired = apperror.New(http.StatusBadRequest, "resource_id is required")
)

// Unavailability is an ad-hoc blackout window during which a resource cannot
// be booked: maintenance, a private event, a coach blocking a court.
type Unavailability struct {
	ID         string
	ResourceID string
	StartTime  time.Time
	EndTime    time.Time
	Reason     string
	CreatedAt  time.Time
}

// Filter defines parameters for listing blackout windows.
type Filter struct {
	ResourceID string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

package resource

import (
	"net/http"
	"time"

	"github.com/padelarena/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "resource not found")
	ErrEmptyName     = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidRate   = apperror.New(http.StatusBadRequest, "hourly rate must be non-negative")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "invalid resource status")
	ErrNoPhoto       = apperror.New(http.StatusNotFound, "resource has no photo")
)

// Status is the operational state of a resource. Only available resources can
// be booked; maintenance resources show up in listings but reject bookings.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusReserved || s == StatusMaintenance
}

// Resource is a bookable asset: a padel court or a piece of gym equipment.
// Its name and description drive the equipment classification that selects
// the booking rules.
type Resource struct {
	ID            string
	Name          string
	Description   string
	HourlyRate    float64
	Status        Status
	PhotoPath     *string
	ThumbnailPath *string
	CreatedAt     time.Time
}

// Filter defines parameters for listing resources.
type Filter struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

package booking

import (
	"context"
	"errors"
	"time"

	"github.com/padelarena/booking-backend/internal/availability"
	"github.com/padelarena/booking-backend/internal/resource"
	"github.com/padelarena/booking-backend/internal/unavailability"
)

type CreateRequest struct {
	UserID          string
	ResourceID      string
	StartTime       time.Time
	DurationMinutes int
}

// AvailableSlot is one bookable option with its price quote, ready for the
// booking page.
type AvailableSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Price           int64
}

type Service interface {
	// Availability computes the bookable slots for a resource on a calendar
	// day. An empty result is a normal outcome, not an error.
	Availability(ctx context.Context, resourceID string, day time.Time) ([]AvailableSlot, error)

	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Cancel(ctx context.Context, id, cancellerUserID string, isAdmin bool) (*Booking, error)

	// SetStatus transitions a booking without permission checks. Reserved for
	// trusted internal callers (the payment webhook glue).
	SetStatus(ctx context.Context, id string, status Status) (*Booking, error)
}

type service struct {
	repo          Repository
	resService    resource.Service
	unavService   unavailability.Service
	location      *time.Location
	applyDiscount bool

	now func() time.Time
}

// NewService wires the booking module. location is the business timezone all
// day-level computation is anchored to.
func NewService(repo Repository, resService resource.Service, unavService unavailability.Service, location *time.Location) Service {
	return &service{
		repo:          repo,
		resService:    resService,
		unavService:   unavService,
		location:      location,
		applyDiscount: true,
		now:           time.Now,
	}
}

// dayBounds returns midnight-to-midnight for the calendar day in the business
// timezone, used to fetch the rows the resolver needs.
func (s *service) dayBounds(day time.Time) (time.Time, time.Time) {
	y, m, d := day.In(s.location).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.location)
	return start, start.AddDate(0, 0, 1)
}

// dayInputs fetches everything the pure resolver needs for one resource day.
func (s *service) dayInputs(ctx context.Context, res *resource.Resource, day time.Time) ([]availability.Reservation, []availability.Interval, error) {
	dayStart, dayEnd := s.dayBounds(day)

	rows, err := s.repo.ListForResourceDay(ctx, res.ID, dayStart, dayEnd)
	if err != nil {
		return nil, nil, err
	}
	reservations := make([]availability.Reservation, len(rows))
	for i, b := range rows {
		reservations[i] = availability.Reservation{
			Start:  b.StartTime.In(s.location),
			End:    b.EndTime.In(s.location),
			Status: string(b.Status),
		}
	}

	blacks, err := s.unavService.ListForResourceDay(ctx, res.ID, dayStart, dayEnd)
	if err != nil {
		return nil, nil, err
	}
	blocks := make([]availability.Interval, len(blacks))
	for i, u := range blacks {
		blocks[i] = availability.Interval{
			Start: u.StartTime.In(s.location),
			End:   u.EndTime.In(s.location),
		}
	}

	return reservations, blocks, nil
}

func (s *service) Availability(ctx context.Context, resourceID string, day time.Time) ([]AvailableSlot, error) {
	res, err := s.resService.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if res.Status == resource.StatusMaintenance {
		// A maintenance resource simply has no availability.
		return []AvailableSlot{}, nil
	}

	dayStart, _ := s.dayBounds(day)
	reservations, blocks, err := s.dayInputs(ctx, res, day)
	if err != nil {
		return nil, err
	}

	slots := availability.Resolve(
		dayStart,
		s.now().In(s.location),
		availability.ResourceText{Name: res.Name, Description: res.Description},
		reservations,
		blocks,
	)

	out := make([]AvailableSlot, 0, len(slots))
	for _, sl := range slots {
		price, err := availability.Price(res.HourlyRate, sl.DurationMinutes, s.applyDiscount)
		if err != nil {
			return nil, err
		}
		out = append(out, AvailableSlot{
			Start:           sl.Start,
			End:             sl.End,
			DurationMinutes: sl.DurationMinutes,
			Price:           price,
		})
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidTimeRange
	}

	start := req.StartTime.In(s.location)
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)
	now := s.now().In(s.location)
	if !start.After(now) {
		return nil, ErrStartTimePast
	}

	res, err := s.resService.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if res.Status == resource.StatusMaintenance {
		return nil, ErrResourceInactive
	}

	// The requested slot must obey the category's booking rules: on the
	// increment grid, between minimum and maximum duration, inside operating
	// hours.
	rules := availability.RulesFor(availability.Classify(res.Name, res.Description))
	if err := validateAgainstRules(start, req.DurationMinutes, rules); err != nil {
		return nil, err
	}

	// The slot must fit in a free interval right now. A conflicting commit
	// can still slip in between this check and the insert; the store's
	// overlap constraint is the final authority on that race.
	reservations, blocks, err := s.dayInputs(ctx, res, start)
	if err != nil {
		return nil, err
	}
	dayStart, _ := s.dayBounds(start)
	window := rules.WindowOn(dayStart)
	free := availability.FreeIntervals(window, availability.MergeBusy(reservations, blocks, window))
	if !containedInFree(free, start, end) {
		return nil, ErrTimeConflict
	}

	price, err := availability.Price(res.HourlyRate, req.DurationMinutes, s.applyDiscount)
	if err != nil {
		return nil, ErrSlotNotBookable
	}

	b := &Booking{
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		StartTime:  start,
		EndTime:    end,
		Status:     StatusPending,
		Price:      price,
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, req.ResourceID, start, end, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	b.ResourceName = res.Name
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id, cancellerUserID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && b.UserID != cancellerUserID {
		return nil, ErrPermissionDenied
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	b.Status = StatusCancelled
	if err := s.repo.UpdateStatus(ctx, b.ID, StatusCancelled); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) SetStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Payments only ever confirm a pending booking or cancel an unpaid one.
	switch status {
	case StatusConfirmed, StatusCancelled:
		if b.Status == StatusCancelled {
			return nil, ErrInvalidStatusFlow
		}
	default:
		return nil, ErrInvalidStatusFlow
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

// validateAgainstRules checks grid alignment and duration limits.
func validateAgainstRules(start time.Time, durationMinutes int, rules availability.Rules) error {
	if durationMinutes < rules.MinDurationMinutes || durationMinutes > rules.MaxDurationMinutes {
		return ErrSlotNotBookable
	}
	if rules.IncrementMinutes <= 0 || durationMinutes%rules.IncrementMinutes != 0 {
		return ErrSlotNotBookable
	}

	startMinute := start.Hour()*60 + start.Minute()
	if start.Second() != 0 || start.Nanosecond() != 0 {
		return ErrSlotNotBookable
	}
	if startMinute < rules.OpenMinute || startMinute+durationMinutes > rules.CloseMinute {
		return ErrSlotNotBookable
	}
	if (startMinute-rules.OpenMinute)%rules.IncrementMinutes != 0 {
		return ErrSlotNotBookable
	}
	return nil
}

func containedInFree(free []availability.Interval, start, end time.Time) bool {
	for _, f := range free {
		if !start.Before(f.Start) && !end.After(f.End) {
			return true
		}
	}
	return false
}

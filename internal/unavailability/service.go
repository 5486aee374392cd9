package unavailability

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	ResourceID string
	StartTime  time.Time
	EndTime    time.Time
	Reason     string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Unavailability, error)
	List(ctx context.Context, filter Filter) ([]*Unavailability, int, error)
	Delete(ctx context.Context, id string) error

	// ListForResourceDay returns every blackout that intersects the given
	// day, for the availability resolver.
	ListForResourceDay(ctx context.Context, resourceID string, dayStart, dayEnd time.Time) ([]*Unavailability, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Unavailability, error) {
	if req.ResourceID == "" {
		return nil, ErrResourceRequired
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	u := &Unavailability{
		ResourceID: req.ResourceID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     strings.TrimSpace(req.Reason),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Unavailability, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListForResourceDay(ctx context.Context, resourceID string, dayStart, dayEnd time.Time) ([]*Unavailability, error) {
	return s.repo.ListIntersecting(ctx, resourceID, dayStart, dayEnd)
}

package payment

import (
	"context"
	"errors"
	"log"

	"github.com/padelarena/booking-backend/internal/booking"
)

// Service applies verified gateway events to bookings: a completed checkout
// confirms the pending booking, a failed or expired one releases the slot.
type Service interface {
	HandleEvent(ctx context.Context, evt Event) error
}

type service struct {
	repo       Repository
	bookingSvc booking.Service
}

func NewService(repo Repository, bookingSvc booking.Service) Service {
	return &service{repo: repo, bookingSvc: bookingSvc}
}

// HandleEvent is idempotent: a replayed delivery stops at the duplicate
// reference before any booking transition runs a second time.
func (s *service) HandleEvent(ctx context.Context, evt Event) error {
	if evt.Checkout == nil {
		// Unknown event type: acknowledge so the gateway stops retrying.
		log.Printf("payment: ignoring unhandled event type %q", evt.Type)
		return nil
	}

	data := evt.Checkout
	if err := s.repo.Record(ctx, &Payment{
		BookingID: data.BookingID,
		Reference: data.Reference,
		Amount:    data.Amount,
		Currency:  data.Currency,
		EventType: evt.Type,
	}); err != nil {
		return err
	}

	var target booking.Status
	switch evt.Type {
	case EventCheckoutCompleted:
		target = booking.StatusConfirmed
	case EventCheckoutFailed, EventCheckoutExpired:
		target = booking.StatusCancelled
	default:
		return nil
	}

	if _, err := s.bookingSvc.SetStatus(ctx, data.BookingID, target); err != nil {
		// A booking cancelled by the user between checkout and webhook is
		// expected; everything else propagates.
		if errors.Is(err, booking.ErrInvalidStatusFlow) || errors.Is(err, booking.ErrNotFound) {
			log.Printf("payment: event %s for booking %s not applied: %v", evt.Type, data.BookingID, err)
			return nil
		}
		return err
	}
	return nil
}

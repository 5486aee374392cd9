package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelarena/booking-backend/internal/booking"
)

type fakePaymentRepo struct {
	recorded []*Payment
	seen     map[string]bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{seen: map[string]bool{}}
}

func (r *fakePaymentRepo) Record(_ context.Context, p *Payment) error {
	if r.seen[p.Reference] {
		return ErrDuplicateEvent
	}
	r.seen[p.Reference] = true
	r.recorded = append(r.recorded, p)
	return nil
}

func (r *fakePaymentRepo) ListForBooking(_ context.Context, bookingID string) ([]*Payment, error) {
	var out []*Payment
	for _, p := range r.recorded {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeBookingService records SetStatus calls; everything else is unused by
// the payment glue.
type fakeBookingService struct {
	statuses  map[string]booking.Status
	statusErr error
}

func newFakeBookingService() *fakeBookingService {
	return &fakeBookingService{statuses: map[string]booking.Status{}}
}

func (f *fakeBookingService) SetStatus(_ context.Context, id string, status booking.Status) (*booking.Booking, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	f.statuses[id] = status
	return &booking.Booking{ID: id, Status: status}, nil
}

func (f *fakeBookingService) Availability(context.Context, string, time.Time) ([]booking.AvailableSlot, error) {
	panic("not used")
}

func (f *fakeBookingService) Create(context.Context, booking.CreateRequest) (*booking.Booking, error) {
	panic("not used")
}

func (f *fakeBookingService) GetByID(context.Context, string) (*booking.Booking, error) {
	panic("not used")
}

func (f *fakeBookingService) List(context.Context, booking.Filter) ([]*booking.Booking, int, error) {
	panic("not used")
}

func (f *fakeBookingService) Cancel(context.Context, string, string, bool) (*booking.Booking, error) {
	panic("not used")
}

func checkoutEvent(eventType, reference, bookingID string) Event {
	return Event{
		Type: eventType,
		Checkout: &CheckoutData{
			Reference: reference,
			BookingID: bookingID,
			Amount:    16000,
			Currency:  "XAF",
		},
	}
}

func TestHandleEventConfirmsBooking(t *testing.T) {
	repo := newFakePaymentRepo()
	bookings := newFakeBookingService()
	svc := NewService(repo, bookings)

	err := svc.HandleEvent(context.Background(), checkoutEvent(EventCheckoutCompleted, "pay_1", "b1"))
	require.NoError(t, err)

	assert.Equal(t, booking.StatusConfirmed, bookings.statuses["b1"])
	require.Len(t, repo.recorded, 1)
	assert.Equal(t, "pay_1", repo.recorded[0].Reference)
	assert.Equal(t, EventCheckoutCompleted, repo.recorded[0].EventType)
}

func TestHandleEventCancelsOnFailure(t *testing.T) {
	for _, eventType := range []string{EventCheckoutFailed, EventCheckoutExpired} {
		t.Run(eventType, func(t *testing.T) {
			bookings := newFakeBookingService()
			svc := NewService(newFakePaymentRepo(), bookings)

			err := svc.HandleEvent(context.Background(), checkoutEvent(eventType, "pay_1", "b1"))
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCancelled, bookings.statuses["b1"])
		})
	}
}

func TestHandleEventReplayedDelivery(t *testing.T) {
	repo := newFakePaymentRepo()
	bookings := newFakeBookingService()
	svc := NewService(repo, bookings)

	evt := checkoutEvent(EventCheckoutCompleted, "pay_1", "b1")
	require.NoError(t, svc.HandleEvent(context.Background(), evt))

	// The replay stops at the duplicate reference; no second transition runs.
	bookings.statuses = map[string]booking.Status{}
	err := svc.HandleEvent(context.Background(), evt)
	assert.ErrorIs(t, err, ErrDuplicateEvent)
	assert.Empty(t, bookings.statuses)
	assert.Len(t, repo.recorded, 1)
}

func TestHandleEventIgnoresUnknownType(t *testing.T) {
	repo := newFakePaymentRepo()
	bookings := newFakeBookingService()
	svc := NewService(repo, bookings)

	err := svc.HandleEvent(context.Background(), Event{Type: "refund.created"})
	require.NoError(t, err)
	assert.Empty(t, repo.recorded)
	assert.Empty(t, bookings.statuses)
}

func TestHandleEventToleratesCancelledBooking(t *testing.T) {
	// The user cancelled between checkout and webhook; the event is still
	// recorded and the delivery acknowledged.
	repo := newFakePaymentRepo()
	bookings := newFakeBookingService()
	bookings.statusErr = booking.ErrInvalidStatusFlow
	svc := NewService(repo, bookings)

	err := svc.HandleEvent(context.Background(), checkoutEvent(EventCheckoutCompleted, "pay_1", "b1"))
	assert.NoError(t, err)
	assert.Len(t, repo.recorded, 1)
}

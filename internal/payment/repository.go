package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Payment records one gateway event applied to a booking. The unique
// reference is what makes webhook processing idempotent: a replayed delivery
// hits the constraint and is dropped.
type Payment struct {
	ID        string
	BookingID string
	Reference string
	Amount    int64
	Currency  string
	EventType string
	CreatedAt time.Time
}

type Repository interface {
	// Record inserts the payment event, returning ErrDuplicateEvent when the
	// reference was already processed.
	Record(ctx context.Context, p *Payment) error
	ListForBooking(ctx context.Context, bookingID string) ([]*Payment, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Record(ctx context.Context, p *Payment) error {
	const query = `
		INSERT INTO public.payments (booking_id, reference, amount, currency, event_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, p.BookingID, p.Reference, p.Amount, p.Currency, p.EventType).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateEvent
		}
		return fmt.Errorf("record payment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListForBooking(ctx context.Context, bookingID string) ([]*Payment, error) {
	const query = `
		SELECT id, booking_id, reference, amount, currency, event_type, created_at
		FROM public.payments
		WHERE booking_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list payments failed: %w", err)
	}
	defer rows.Close()

	var result []*Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Reference, &p.Amount, &p.Currency, &p.EventType, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment failed: %w", err)
		}
		result = append(result, &p)
	}
	return result, nil
}

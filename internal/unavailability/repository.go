package unavailability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, u *Unavailability) error
	List(ctx context.Context, filter Filter) ([]*Unavailability, int, error)
	Delete(ctx context.Context, id string) error
	ListIntersecting(ctx context.Context, resourceID string, start, end time.Time) ([]*Unavailability, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, u *Unavailability) error {
	const query = `
		INSERT INTO public.unavailabilities (resource_id, start_time, end_time, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, u.ResourceID, u.StartTime, u.EndTime, u.Reason).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("create unavailability failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Unavailability, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "resource_id", "start_time", "end_time", "reason", "created_at",
		"count(*) OVER() as total_count",
	).From("public.unavailabilities")

	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"resource_id": filter.ResourceID})
	}
	// Intersection filtering: keep windows that touch [From, To].
	if filter.From != nil {
		query = query.Where(squirrel.Gt{"end_time": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{"start_time": filter.To})
	}

	query = query.OrderBy("start_time ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list unavailabilities query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list unavailabilities failed: %w", err)
	}
	defer rows.Close()

	var result []*Unavailability
	var total int

	for rows.Next() {
		var u Unavailability
		if err := rows.Scan(&u.ID, &u.ResourceID, &u.StartTime, &u.EndTime, &u.Reason, &u.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan unavailability failed: %w", err)
		}
		result = append(result, &u)
	}

	return result, total, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.unavailabilities WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete unavailability failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListIntersecting(ctx context.Context, resourceID string, start, end time.Time) ([]*Unavailability, error) {
	const query = `
		SELECT id, resource_id, start_time, end_time, reason, created_at
		FROM public.unavailabilities
		WHERE resource_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC
	`
	rows, err := r.pool.Query(ctx, query, resourceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list intersecting unavailabilities failed: %w", err)
	}
	defer rows.Close()

	var result []*Unavailability
	for rows.Next() {
		var u Unavailability
		if err := rows.Scan(&u.ID, &u.ResourceID, &u.StartTime, &u.EndTime, &u.Reason, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unavailability failed: %w", err)
		}
		result = append(result, &u)
	}
	return result, nil
}

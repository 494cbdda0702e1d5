package favorite

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) List(ctx context.Context, userID string) ([]Entry, error) {
	sql := `
			SELECT user_id, licensee_id, created_at
			FROM court_booking.favorite
			WHERE user_id = $1
			ORDER BY created_at ASC;
		`

	rows, err := r.pool.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites for user '%v': %w", userID, err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Entry])

	if err != nil {
		return nil, fmt.Errorf("error scanning favorite rows: %w", err)
	}

	return entries, nil
}

func (r *Repository) Add(ctx context.Context, userID, licenseeID string) error {
	sql := `
			INSERT INTO court_booking.favorite(user_id, licensee_id, created_at)
			VALUES ($1, $2, now())
			ON CONFLICT (user_id, licensee_id) DO NOTHING;
		`

	_, err := r.pool.Exec(ctx, sql, userID, licenseeID)

	if err != nil {
		return fmt.Errorf("failed to add favorite '%v' for user '%v': %w", licenseeID, userID, err)
	}

	return nil
}

func (r *Repository) Remove(ctx context.Context, userID, licenseeID string) error {
	sql := `DELETE FROM court_booking.favorite WHERE user_id = $1 AND licensee_id = $2;`

	_, err := r.pool.Exec(ctx, sql, userID, licenseeID)

	if err != nil {
		return fmt.Errorf("failed to remove favorite '%v' for user '%v': %w", licenseeID, userID, err)
	}

	return nil
}

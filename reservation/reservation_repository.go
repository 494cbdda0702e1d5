package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const entryColumns = `id, session_id, main_user_id, partner_id, start_date, club_id, booking_action_user_id, deleted, created_at`

// RecordBooking inserts an active entry. It does not look for an existing active entry:
// it only runs after upstream confirmed the booking.
func (r *Repository) RecordBooking(ctx context.Context, entry Entry) error {
	sql := `
			INSERT INTO court_booking.reservation(` + entryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, false, now());
		`

	_, err := r.pool.Exec(ctx, sql,
		entry.ID,
		entry.SessionID,
		entry.MainUserID,
		entry.PartnerID,
		entry.StartDate,
		entry.ClubID,
		entry.BookingActionUserID,
	)

	if err != nil {
		return fmt.Errorf("failed to insert reservation for session '%v': %w", entry.SessionID, err)
	}

	return nil
}

// CancelBooking flags every active entry of the session as deleted, or inserts a deleted
// entry carrying the given metadata when there was none, in one statement.
func (r *Repository) CancelBooking(ctx context.Context, entry Entry) (Tombstone, error) {
	sql := `
			WITH marked AS (
				UPDATE court_booking.reservation
				SET deleted = true
				WHERE session_id = $1 AND deleted = false
				RETURNING id
			), inserted AS (
				INSERT INTO court_booking.reservation(` + entryColumns + `)
				SELECT $2, $1, $3, $4, $5, $6, $7, true, now()
				WHERE NOT EXISTS (SELECT 1 FROM marked)
				RETURNING id
			)
			SELECT (SELECT COUNT(*) FROM marked), (SELECT COUNT(*) FROM inserted);
		`

	var marked, inserted int
	err := r.pool.QueryRow(ctx, sql,
		entry.SessionID,
		entry.ID,
		entry.MainUserID,
		entry.PartnerID,
		entry.StartDate,
		entry.ClubID,
		entry.BookingActionUserID,
	).Scan(&marked, &inserted)

	if err != nil {
		return "", fmt.Errorf("failed to tombstone reservation for session '%v': %w", entry.SessionID, err)
	}

	if marked > 0 {
		return TombstoneMarked, nil
	}

	return TombstoneInserted, nil
}

func (r *Repository) GetFutureBookingsByActor(ctx context.Context, userID string, now time.Time) ([]Entry, error) {
	sql := `
			SELECT ` + entryColumns + `
			FROM court_booking.reservation
			WHERE booking_action_user_id = $1 AND start_date >= $2 AND deleted = false
			ORDER BY start_date ASC;
		`

	rows, err := r.pool.Query(ctx, sql, userID, now)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch future reservations for user '%v': %w", userID, err)
	}

	return collectEntries(rows)
}

func (r *Repository) GetEntries(ctx context.Context, filter Filter) ([]Entry, error) {
	sql := `
			SELECT ` + entryColumns + `
			FROM court_booking.reservation
			WHERE ($1::timestamptz IS NULL OR start_date >= $1)
			AND ($2::timestamptz IS NULL OR start_date < $2)
			AND ($3 OR deleted = false)
			ORDER BY start_date ASC, created_at ASC;
		`

	rows, err := r.pool.Query(ctx, sql, filter.From, filter.To, filter.IncludeDeleted)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return collectEntries(rows)
}

// GetActiveDuplicates lists sessions holding more than one active entry, which upstream should make impossible.
func (r *Repository) GetActiveDuplicates(ctx context.Context) ([]Entry, error) {
	sql := `
			SELECT ` + entryColumns + `
			FROM court_booking.reservation
			WHERE deleted = false AND session_id IN (
				SELECT session_id FROM court_booking.reservation
				WHERE deleted = false
				GROUP BY session_id
				HAVING COUNT(*) > 1
			)
			ORDER BY session_id, created_at;
		`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch duplicate reservations: %w", err)
	}

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]Entry, error) {
	defer rows.Close()

	entries := []Entry{}

	for rows.Next() {
		var entry Entry
		err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.MainUserID,
			&entry.PartnerID,
			&entry.StartDate,
			&entry.ClubID,
			&entry.BookingActionUserID,
			&entry.Deleted,
			&entry.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return entries, nil
}

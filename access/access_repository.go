package access

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) IsEmailAuthorized(ctx context.Context, email string) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM court_booking.authorized_user WHERE lower(email) = lower($1));`

	var found bool
	err := r.pool.QueryRow(ctx, sql, email).Scan(&found)

	if err != nil {
		return false, fmt.Errorf("failed to check authorized email: %w", err)
	}

	return found, nil
}

func (r *Repository) ListAuthorizedEmails(ctx context.Context) ([]AuthorizedUser, error) {
	sql := `SELECT email, created_at FROM court_booking.authorized_user ORDER BY email;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch authorized emails: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByPos[AuthorizedUser])

	if err != nil {
		return nil, fmt.Errorf("error scanning authorized email rows: %w", err)
	}

	return users, nil
}

func (r *Repository) AddAuthorizedEmail(ctx context.Context, email string) error {
	sql := `
			INSERT INTO court_booking.authorized_user(email, created_at)
			VALUES (lower($1), now())
			ON CONFLICT (email) DO NOTHING;
		`

	_, err := r.pool.Exec(ctx, sql, email)

	if err != nil {
		return fmt.Errorf("failed to add authorized email: %w", err)
	}

	return nil
}

func (r *Repository) RemoveAuthorizedEmail(ctx context.Context, email string) error {
	sql := `DELETE FROM court_booking.authorized_user WHERE email = lower($1);`

	_, err := r.pool.Exec(ctx, sql, email)

	if err != nil {
		return fmt.Errorf("failed to remove authorized email: %w", err)
	}

	return nil
}

// GetRights reports found=false when the user has no row.
func (r *Repository) GetRights(ctx context.Context, userID string) (Rights, bool, error) {
	sql := `SELECT rights FROM court_booking.user_rights WHERE user_id = $1;`

	var raw []byte
	err := r.pool.QueryRow(ctx, sql, userID).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch rights for user '%v': %w", userID, err)
	}

	rights, err := decodeRights(raw)

	if err != nil {
		return nil, false, fmt.Errorf("failed to decode rights for user '%v': %w", userID, err)
	}

	return rights, true, nil
}

// GrantRight appends the right in a single statement, so concurrent grants of
// different rights on the same user both survive. Nothing is written when it is already held.
func (r *Repository) GrantRight(ctx context.Context, userID string, right Right) (Rights, error) {
	sql := `
			INSERT INTO court_booking.user_rights(user_id, rights, updated_at)
			VALUES ($1, jsonb_build_array($2::text), now())
			ON CONFLICT (user_id) DO UPDATE
			SET rights = court_booking.user_rights.rights || jsonb_build_array($2::text), updated_at = now()
			WHERE NOT court_booking.user_rights.rights ? $2::text
			RETURNING rights;
		`

	return r.changeRights(ctx, sql, userID, right, "grant")
}

// RevokeRight only touches an existing row that holds the right.
func (r *Repository) RevokeRight(ctx context.Context, userID string, right Right) (Rights, error) {
	sql := `
			UPDATE court_booking.user_rights
			SET rights = rights - $2::text, updated_at = now()
			WHERE user_id = $1 AND rights ? $2::text
			RETURNING rights;
		`

	return r.changeRights(ctx, sql, userID, right, "revoke")
}

func (r *Repository) changeRights(ctx context.Context, sql, userID string, right Right, op string) (Rights, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, sql, userID, string(right)).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		rights, _, err := r.GetRights(ctx, userID)

		if err != nil {
			return nil, err
		}

		if rights == nil {
			return Rights{}, nil
		}

		return rights, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to %v right '%v' for user '%v': %w", op, right, userID, err)
	}

	rights, err := decodeRights(raw)

	if err != nil {
		return nil, fmt.Errorf("failed to decode rights for user '%v': %w", userID, err)
	}

	return rights, nil
}

func (r *Repository) ListRights(ctx context.Context) ([]UserRights, error) {
	sql := `SELECT user_id, rights FROM court_booking.user_rights ORDER BY user_id;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch user rights: %w", err)
	}

	defer rows.Close()

	all := []UserRights{}

	for rows.Next() {
		var (
			userRights UserRights
			raw        []byte
		)

		if err := rows.Scan(&userRights.UserID, &raw); err != nil {
			return nil, fmt.Errorf("error scanning user rights row: %w", err)
		}

		userRights.Rights, err = decodeRights(raw)

		if err != nil {
			return nil, fmt.Errorf("failed to decode rights for user '%v': %w", userRights.UserID, err)
		}

		all = append(all, userRights)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rights rows: %w", err)
	}

	return all, nil
}

func decodeRights(raw []byte) (Rights, error) {
	var values []string

	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}

	rights := Rights{}

	for _, value := range values {
		right, err := ParseRight(value)

		if err != nil {
			return nil, err
		}

		rights = rights.with(right)
	}

	return rights, nil
}

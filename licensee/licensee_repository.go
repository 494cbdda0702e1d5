package licensee

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetByIDs(ctx context.Context, ids []string) (map[string]Licensee, error) {
	sql := `
			SELECT user_id, email, first_name, last_name
			FROM court_booking.licensee
			WHERE user_id = ANY($1);
		`

	rows, err := r.pool.Query(ctx, sql, ids)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch licensees: %w", err)
	}

	licensees, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Licensee])

	if err != nil {
		return nil, fmt.Errorf("error scanning licensee rows: %w", err)
	}

	byID := make(map[string]Licensee, len(licensees))

	for _, l := range licensees {
		byID[l.UserID] = l
	}

	return byID, nil
}

func (r *Repository) Insert(ctx context.Context, l Licensee) error {
	sql := `
			INSERT INTO court_booking.licensee(user_id, email, first_name, last_name, updated_at)
			VALUES ($1, $2, $3, $4, now());
		`

	_, err := r.pool.Exec(ctx, sql, l.UserID, l.Email, l.FirstName, l.LastName)

	if err != nil {
		return fmt.Errorf("failed to insert licensee '%v': %w", l.UserID, err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, l Licensee) error {
	sql := `
			UPDATE court_booking.licensee
			SET email=$2, first_name=$3, last_name=$4, updated_at=now()
			WHERE user_id=$1;
		`

	_, err := r.pool.Exec(ctx, sql, l.UserID, l.Email, l.FirstName, l.LastName)

	if err != nil {
		return fmt.Errorf("failed to update licensee '%v': %w", l.UserID, err)
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user input into an ILIKE substring pattern matched literally.
// Empty input stays empty, which the queries read as no filter.
func containsPattern(text string) string {
	if len(text) == 0 {
		return ""
	}

	return "%" + likeEscaper.Replace(text) + "%"
}

func (r *Repository) Search(ctx context.Context, query string, limit int) ([]Licensee, error) {
	sql := `
			SELECT user_id, email, first_name, last_name
			FROM court_booking.licensee
			WHERE $1::text = '' OR (first_name || ' ' || last_name || ' ' || email) ILIKE $1::text ESCAPE '\'
			ORDER BY last_name, first_name
			LIMIT $2;
		`

	rows, err := r.pool.Query(ctx, sql, containsPattern(query), limit)

	if err != nil {
		return nil, fmt.Errorf("failed to search licensees: %w", err)
	}

	licensees, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Licensee])

	if err != nil {
		return nil, fmt.Errorf("error scanning licensee rows: %w", err)
	}

	return licensees, nil
}

package actionlog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, entry Entry) error {
	sql := `
			INSERT INTO court_booking.action_log(
			id, user_id, action_type, action_result, action_timestamp, action_details, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, now());
		`

	details, err := json.Marshal(entry.ActionDetails)

	if err != nil {
		return fmt.Errorf("failed to marshal action details: %w", err)
	}

	_, err = r.pool.Exec(ctx, sql,
		entry.ID,
		entry.UserID,
		string(entry.ActionType),
		string(entry.ActionResult),
		entry.ActionTimestamp,
		details,
	)

	if err != nil {
		return fmt.Errorf("failed to insert action log: %w", err)
	}

	return nil
}

// filter shared by the count and page queries; user names come from the licensee mirror.
const listFilter = `
			FROM court_booking.action_log l
			LEFT JOIN court_booking.licensee li ON li.user_id = l.user_id
			WHERE ($1::text = '' OR (li.first_name || ' ' || li.last_name) ILIKE $1::text ESCAPE '\')
			AND (cardinality($2::text[]) = 0 OR l.action_type = ANY($2::text[]))
			AND ($3::text = '' OR l.action_result = $3::text)
		`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user input into an ILIKE substring pattern matched literally.
// Empty input stays empty, which the queries read as no filter.
func containsPattern(text string) string {
	if len(text) == 0 {
		return ""
	}

	return "%" + likeEscaper.Replace(text) + "%"
}

func (r *Repository) List(ctx context.Context, query Query) ([]Entry, int, error) {
	userName := containsPattern(query.UserName)

	actionTypes := make([]string, 0, len(query.ActionTypes))

	for _, actionType := range query.ActionTypes {
		actionTypes = append(actionTypes, string(actionType))
	}

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) `+listFilter, userName, actionTypes, string(query.Status)).Scan(&total)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to count action logs: %w", err)
	}

	sql := `
			SELECT l.id, l.user_id, COALESCE(li.first_name || ' ' || li.last_name, ''), l.action_type, l.action_result,
			l.action_timestamp, l.action_details, l.created_at
		` + listFilter + `
			ORDER BY l.action_timestamp DESC
			LIMIT $4 OFFSET $5;
		`

	rows, err := r.pool.Query(ctx, sql, userName, actionTypes, string(query.Status), query.Limit, (query.Page-1)*query.Limit)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch action logs: %w", err)
	}

	defer rows.Close()

	entries := []Entry{}

	for rows.Next() {
		var (
			entry      Entry
			actionType string
			result     string
			raw        []byte
		)

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.UserName,
			&actionType,
			&result,
			&entry.ActionTimestamp,
			&raw,
			&entry.CreatedAt,
		)

		if err != nil {
			return nil, 0, fmt.Errorf("error scanning action log row: %w", err)
		}

		entry.ActionType = ActionType(actionType)
		entry.ActionResult = Result(result)
		entry.ActionDetails, err = DecodeDetails(entry.ActionType, raw)

		if err != nil {
			return nil, 0, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating action log rows: %w", err)
	}

	return entries, total, nil
}

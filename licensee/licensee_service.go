package licensee

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanksha/court-booking-backend/access"
)

//go:generate mockgen -source=licensee_service.go -destination=mocks/licensee_service_mock.go -package=mocks

type LicenseeRepository interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]Licensee, error)
	Insert(ctx context.Context, l Licensee) error
	Update(ctx context.Context, l Licensee) error
	Search(ctx context.Context, query string, limit int) ([]Licensee, error)
}

type Roster interface {
	Reload(ctx context.Context) error
	Rows(ctx context.Context) ([]Row, error)
}

const (
	DefaultBatchSize = 500
	maxBatchSize     = 2000
	maxSearchResults = 50
)

type Service struct {
	repo   LicenseeRepository
	roster Roster
}

func NewService(repo LicenseeRepository, roster Roster) *Service {
	return &Service{repo: repo, roster: roster}
}

// Import upserts one batch of the roster into the local mirror.
// Batch 0 reloads the directory first so a full import also refreshes the in-memory roster.
// Batches window the raw roster, so over a full import the four counters add up to its length.
func (s *Service) Import(ctx context.Context, batch, batchSize int) (ImportResult, error) {
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}

	if batch < 0 || batchSize < 0 || batchSize > maxBatchSize {
		return ImportResult{}, fmt.Errorf("%w: batch=%d batchSize=%d", ErrInvalidBatch, batch, batchSize)
	}

	if batch == 0 {
		if err := s.roster.Reload(ctx); err != nil {
			return ImportResult{}, err
		}
	}

	rows, err := s.roster.Rows(ctx)

	if err != nil {
		return ImportResult{}, err
	}

	start := batch * batchSize

	if start >= len(rows) {
		return ImportResult{}, nil
	}

	end := min(start+batchSize, len(rows))
	window := rows[start:end]
	result := ImportResult{HasMore: end < len(rows)}

	ids := make([]string, 0, len(window))

	for _, row := range window {
		if !row.Duplicate && len(row.Licensee.UserID) != 0 {
			ids = append(ids, row.Licensee.UserID)
		}
	}

	existing, err := s.repo.GetByIDs(ctx, ids)

	if err != nil {
		return ImportResult{}, err
	}

	for _, row := range window {
		l := row.Licensee

		if row.Duplicate || !valid(l) {
			result.Rejected++
			continue
		}

		stored, found := existing[l.UserID]

		switch {
		case !found:
			if err := s.repo.Insert(ctx, l); err != nil {
				return result, err
			}
			result.Imported++
		case stored != l:
			if err := s.repo.Update(ctx, l); err != nil {
				return result, err
			}
			result.Updated++
		default:
			result.Skipped++
		}
	}

	return result, nil
}

func valid(l Licensee) bool {
	return len(l.UserID) != 0 && access.ValidEmail(l.Email) && len(l.FullName()) != 0
}

func (s *Service) Search(ctx context.Context, query string, limit int) ([]Licensee, error) {
	if limit <= 0 || limit > maxSearchResults {
		limit = maxSearchResults
	}

	return s.repo.Search(ctx, strings.TrimSpace(query), limit)
}

package actionlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=actionlog_service.go -destination=mocks/actionlog_service_mock.go -package=mocks

type ActionLogRepository interface {
	Insert(ctx context.Context, entry Entry) error
	List(ctx context.Context, query Query) ([]Entry, int, error)
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type Service struct {
	repo   ActionLogRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo ActionLogRepository) *Service {
	return &Service{
		repo:   repo,
		logger: slog.Default().With("component", "actionlog"),
		now:    time.Now,
	}
}

// Log appends one entry. Failures are reported and swallowed so the guarded action is never blocked.
func (s *Service) Log(ctx context.Context, userID string, details Details, success bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("action log write panicked", "userId", userID, "panic", r)
		}
	}()

	if details == nil {
		s.logger.Error("action log called without details", "userId", userID)
		return
	}

	result := ResultFailed
	if success {
		result = ResultSuccess
	}

	entry := Entry{
		ID:              uuid.NewString(),
		UserID:          userID,
		ActionType:      details.ActionType(),
		ActionResult:    result,
		ActionTimestamp: s.now(),
		ActionDetails:   details,
	}

	// the request may already be finished when the failure path runs
	if err := s.repo.Insert(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.Error("failed to write action log",
			"err", err,
			"userId", userID,
			"actionType", entry.ActionType,
			"actionResult", entry.ActionResult,
		)
	}
}

func (s *Service) List(ctx context.Context, query Query) (Page, error) {
	if query.Page <= 0 {
		query.Page = 1
	}

	if query.Limit <= 0 {
		query.Limit = defaultPageLimit
	}

	if query.Limit > maxPageLimit {
		query.Limit = maxPageLimit
	}

	for _, actionType := range query.ActionTypes {
		if !actionType.Valid() {
			return Page{}, fmt.Errorf("%w: unknown action type '%v'", ErrInvalidQuery, actionType)
		}
	}

	if query.Status != "" && !query.Status.Valid() {
		return Page{}, fmt.Errorf("%w: unknown status '%v'", ErrInvalidQuery, query.Status)
	}

	entries, total, err := s.repo.List(ctx, query)

	if err != nil {
		return Page{}, err
	}

	totalPages := (total + query.Limit - 1) / query.Limit

	return Page{
		Data: entries,
		Pagination: Pagination{
			Page:       query.Page,
			Limit:      query.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

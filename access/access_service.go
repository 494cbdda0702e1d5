package access

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

//go:generate mockgen -source=access_service.go -destination=mocks/access_service_mock.go -package=mocks

type AccessRepository interface {
	IsEmailAuthorized(ctx context.Context, email string) (bool, error)
	ListAuthorizedEmails(ctx context.Context) ([]AuthorizedUser, error)
	AddAuthorizedEmail(ctx context.Context, email string) error
	RemoveAuthorizedEmail(ctx context.Context, email string) error
	GetRights(ctx context.Context, userID string) (Rights, bool, error)
	GrantRight(ctx context.Context, userID string, right Right) (Rights, error)
	RevokeRight(ctx context.Context, userID string, right Right) (Rights, error)
	ListRights(ctx context.Context) ([]UserRights, error)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Service struct {
	repo AccessRepository
}

func NewService(repo AccessRepository) *Service {
	return &Service{repo: repo}
}

// IsAuthorizedEmail rejects malformed emails without touching the store.
func (s *Service) IsAuthorizedEmail(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)

	if !ValidEmail(email) {
		return false, nil
	}

	return s.repo.IsEmailAuthorized(ctx, email)
}

func (s *Service) ListAuthorizedEmails(ctx context.Context) ([]AuthorizedUser, error) {
	return s.repo.ListAuthorizedEmails(ctx)
}

func (s *Service) AuthorizeEmail(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	if !ValidEmail(email) {
		return fmt.Errorf("%w: '%v'", ErrInvalidEmail, email)
	}

	return s.repo.AddAuthorizedEmail(ctx, email)
}

func (s *Service) RevokeEmail(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	if !ValidEmail(email) {
		return fmt.Errorf("%w: '%v'", ErrInvalidEmail, email)
	}

	return s.repo.RemoveAuthorizedEmail(ctx, email)
}

// GetUserRights returns an empty set when the user has no row.
func (s *Service) GetUserRights(ctx context.Context, userID string) (Rights, error) {
	rights, _, err := s.repo.GetRights(ctx, userID)

	if err != nil {
		return nil, err
	}

	if rights == nil {
		return Rights{}, nil
	}

	return rights, nil
}

func (s *Service) ListUserRights(ctx context.Context) ([]UserRights, error) {
	return s.repo.ListRights(ctx)
}

func checkRightChange(userID string, right Right) error {
	if len(strings.TrimSpace(userID)) == 0 {
		return ErrInvalidUserID
	}

	_, err := ParseRight(string(right))
	return err
}

// AddRight is a no-op when the right is already held. It returns the user's rights after the change.
func (s *Service) AddRight(ctx context.Context, userID string, right Right) (Rights, error) {
	if err := checkRightChange(userID, right); err != nil {
		return nil, err
	}

	return s.repo.GrantRight(ctx, userID, right)
}

// RemoveRight is a no-op when the right is not held; it never creates a row.
func (s *Service) RemoveRight(ctx context.Context, userID string, right Right) (Rights, error) {
	if err := checkRightChange(userID, right); err != nil {
		return nil, err
	}

	return s.repo.RevokeRight(ctx, userID, right)
}

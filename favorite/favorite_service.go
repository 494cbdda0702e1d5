package favorite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hanksha/court-booking-backend/licensee"
)

//go:generate mockgen -source=favorite_service.go -destination=mocks/favorite_service_mock.go -package=mocks

type FavoriteRepository interface {
	List(ctx context.Context, userID string) ([]Entry, error)
	Add(ctx context.Context, userID, licenseeID string) error
	Remove(ctx context.Context, userID, licenseeID string) error
}

type Directory interface {
	ByID(ctx context.Context, userID string) (licensee.Licensee, bool, error)
}

type Service struct {
	repo      FavoriteRepository
	directory Directory
	logger    *slog.Logger
}

func NewService(repo FavoriteRepository, directory Directory) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		logger:    slog.Default().With("component", "favorite"),
	}
}

// List returns the user's favorites with names taken from the directory.
// Names stay empty when the directory cannot be reached; the first failure
// stops the lookups so an unloaded roster is fetched at most once per call.
func (s *Service) List(ctx context.Context, userID string) ([]Favorite, error) {
	entries, err := s.repo.List(ctx, userID)

	if err != nil {
		return nil, err
	}

	favorites := make([]Favorite, 0, len(entries))
	resolve := true

	for _, entry := range entries {
		favorite := Favorite{LicenseeID: entry.LicenseeID, CreatedAt: entry.CreatedAt}

		if resolve {
			found, ok, err := s.directory.ByID(ctx, entry.LicenseeID)

			if err != nil {
				s.logger.Warn("licensee directory unavailable, favorites without names", "err", err)
				resolve = false
			} else if ok {
				favorite.FirstName = found.FirstName
				favorite.LastName = found.LastName
			}
		}

		favorites = append(favorites, favorite)
	}

	return favorites, nil
}

func (s *Service) Add(ctx context.Context, userID, licenseeID string) error {
	licenseeID = strings.TrimSpace(licenseeID)

	if len(licenseeID) == 0 || licenseeID == userID {
		return fmt.Errorf("%w: '%v'", ErrInvalidFavorite, licenseeID)
	}

	_, ok, err := s.directory.ByID(ctx, licenseeID)

	if err != nil {
		return fmt.Errorf("failed to resolve licensee '%v': %w", licenseeID, err)
	}

	if !ok {
		return fmt.Errorf("%w: '%v'", ErrUnknownLicensee, licenseeID)
	}

	return s.repo.Add(ctx, userID, licenseeID)
}

func (s *Service) Remove(ctx context.Context, userID, licenseeID string) error {
	return s.repo.Remove(ctx, userID, strings.TrimSpace(licenseeID))
}

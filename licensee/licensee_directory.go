package licensee

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/hanksha/court-booking-backend/upstream"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=licensee_directory.go -destination=mocks/licensee_directory_mock.go -package=mocks

type RosterSource interface {
	FetchLicensees(ctx context.Context) ([]upstream.Licensee, error)
}

type index struct {
	byID    map[string]Licensee
	byEmail map[string]Licensee
	rows    []Row
}

// Directory is the process-wide roster, loaded once from the provider and read without locks.
// There is no expiry: Reload (or a restart) is the only refresh.
type Directory struct {
	source RosterSource
	group  singleflight.Group
	index  atomic.Pointer[index]
	logger *slog.Logger
}

func NewDirectory(source RosterSource) *Directory {
	return &Directory{
		source: source,
		logger: slog.Default().With("component", "directory"),
	}
}

func (d *Directory) IsInitialized() bool {
	return d.index.Load() != nil
}

// Initialize loads the roster unless already loaded; concurrent callers share one fetch.
func (d *Directory) Initialize(ctx context.Context) error {
	if d.IsInitialized() {
		return nil
	}

	return d.load(ctx, false)
}

func (d *Directory) Reload(ctx context.Context) error {
	return d.load(ctx, true)
}

func (d *Directory) load(ctx context.Context, force bool) error {
	_, err, _ := d.group.Do("initializing", func() (any, error) {
		if !force && d.IsInitialized() {
			return nil, nil
		}

		// shared by every waiter, so it must not die with the first caller's request
		licensees, err := d.source.FetchLicensees(context.WithoutCancel(ctx))

		if err != nil {
			return nil, fmt.Errorf("failed to load licensee directory: %w", err)
		}

		d.index.Store(buildIndex(licensees))
		d.logger.Info("licensee directory loaded", "count", len(licensees))

		return nil, nil
	})

	return err
}

func buildIndex(licensees []upstream.Licensee) *index {
	idx := &index{
		byID:    make(map[string]Licensee, len(licensees)),
		byEmail: make(map[string]Licensee, len(licensees)),
		rows:    make([]Row, 0, len(licensees)),
	}

	for _, u := range licensees {
		l := fromUpstream(u)
		_, dup := idx.byID[l.UserID]
		idx.rows = append(idx.rows, Row{Licensee: l, Duplicate: dup})

		if len(l.UserID) == 0 || dup {
			continue
		}

		idx.byID[l.UserID] = l

		if len(l.Email) != 0 {
			idx.byEmail[l.Email] = l
		}
	}

	return idx
}

func (d *Directory) current(ctx context.Context) (*index, error) {
	if err := d.Initialize(ctx); err != nil {
		return nil, err
	}

	return d.index.Load(), nil
}

func (d *Directory) ByID(ctx context.Context, userID string) (Licensee, bool, error) {
	idx, err := d.current(ctx)

	if err != nil {
		return Licensee{}, false, err
	}

	l, ok := idx.byID[userID]
	return l, ok, nil
}

func (d *Directory) ByEmail(ctx context.Context, email string) (Licensee, bool, error) {
	idx, err := d.current(ctx)

	if err != nil {
		return Licensee{}, false, err
	}

	l, ok := idx.byEmail[strings.ToLower(strings.TrimSpace(email))]
	return l, ok, nil
}

// Rows returns the roster in provider order, including the lines the lookups ignore.
func (d *Directory) Rows(ctx context.Context) ([]Row, error) {
	idx, err := d.current(ctx)

	if err != nil {
		return nil, err
	}

	return slices.Clone(idx.rows), nil
}

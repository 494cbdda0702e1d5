package favorite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hanksha/court-booking-backend/favorite"
	fv_mocks "github.com/hanksha/court-booking-backend/favorite/mocks"
	"github.com/hanksha/court-booking-backend/licensee"
	"github.com/hanksha/court-booking-backend/upstream"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo      *fv_mocks.MockFavoriteRepository
	directory *fv_mocks.MockDirectory
	service   *favorite.Service
	ctx       context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := fv_mocks.NewMockFavoriteRepository(ctrl)
	directory := fv_mocks.NewMockDirectory(ctrl)

	return ctrl, testDeps{
		repo: repo, directory: directory, service: favorite.NewService(repo, directory), ctx: context.Background(),
	}
}

type failingRoster struct {
	calls int
}

func (r *failingRoster) FetchLicensees(context.Context) ([]upstream.Licensee, error) {
	r.calls++
	return nil, upstream.ErrUpstreamUnavailable
}

func TestList(t *testing.T) {
	added := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

	t.Run("names resolved", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().List(testDeps.ctx, "u1").Return([]favorite.Entry{
			{UserID: "u1", LicenseeID: "u2", CreatedAt: added},
			{UserID: "u1", LicenseeID: "gone", CreatedAt: added},
		}, nil).Times(1)
		testDeps.directory.EXPECT().ByID(testDeps.ctx, "u2").Return(licensee.Licensee{UserID: "u2", FirstName: "Ada", LastName: "Martin"}, true, nil).Times(1)
		testDeps.directory.EXPECT().ByID(testDeps.ctx, "gone").Return(licensee.Licensee{}, false, nil).Times(1)

		favorites, err := testDeps.service.List(testDeps.ctx, "u1")

		require.NoError(t, err)
		require.Equal(t, []favorite.Favorite{
			{LicenseeID: "u2", FirstName: "Ada", LastName: "Martin", CreatedAt: added},
			{LicenseeID: "gone", CreatedAt: added},
		}, favorites)
	})

	t.Run("directory down", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().List(testDeps.ctx, "u1").Return([]favorite.Entry{
			{UserID: "u1", LicenseeID: "u2"},
			{UserID: "u1", LicenseeID: "u3"},
			{UserID: "u1", LicenseeID: "u4"},
		}, nil).Times(1)
		testDeps.directory.EXPECT().ByID(testDeps.ctx, "u2").Return(licensee.Licensee{}, false, errors.New("roster down")).Times(1)

		favorites, err := testDeps.service.List(testDeps.ctx, "u1")

		require.NoError(t, err)
		require.Len(t, favorites, 3)
		for _, f := range favorites {
			require.Empty(t, f.FirstName)
		}
	})

	t.Run("roster fetched once while the provider is down", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		source := &failingRoster{}
		svc := favorite.NewService(testDeps.repo, licensee.NewDirectory(source))

		entries := make([]favorite.Entry, 0, 10)
		for i := range 10 {
			entries = append(entries, favorite.Entry{UserID: "u1", LicenseeID: fmt.Sprintf("m%d", i)})
		}
		testDeps.repo.EXPECT().List(testDeps.ctx, "u1").Return(entries, nil).Times(1)

		favorites, err := svc.List(testDeps.ctx, "u1")

		require.NoError(t, err)
		require.Len(t, favorites, 10)
		require.Equal(t, 1, source.calls)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().List(testDeps.ctx, "u1").Return(nil, errors.New("db down")).Times(1)

		favorites, err := testDeps.service.List(testDeps.ctx, "u1")

		require.Error(t, err)
		require.Nil(t, favorites)
	})
}

func TestAdd(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.directory.EXPECT().ByID(testDeps.ctx, "u2").Return(licensee.Licensee{UserID: "u2"}, true, nil).Times(1)
		testDeps.repo.EXPECT().Add(testDeps.ctx, "u1", "u2").Return(nil).Times(1)

		require.NoError(t, testDeps.service.Add(testDeps.ctx, "u1", " u2 "))
	})

	t.Run("self", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		require.ErrorIs(t, testDeps.service.Add(testDeps.ctx, "u1", "u1"), favorite.ErrInvalidFavorite)
		require.ErrorIs(t, testDeps.service.Add(testDeps.ctx, "u1", ""), favorite.ErrInvalidFavorite)
	})

	t.Run("unknown licensee", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.directory.EXPECT().ByID(testDeps.ctx, "u9").Return(licensee.Licensee{}, false, nil).Times(1)
		testDeps.repo.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		require.ErrorIs(t, testDeps.service.Add(testDeps.ctx, "u1", "u9"), favorite.ErrUnknownLicensee)
	})
}

func TestRemove(t *testing.T) {
	ctrl, testDeps := newTestDeps(t)
	defer ctrl.Finish()

	testDeps.repo.EXPECT().Remove(testDeps.ctx, "u1", "u2").Return(nil).Times(1)

	require.NoError(t, testDeps.service.Remove(testDeps.ctx, "u1", "u2"))
}

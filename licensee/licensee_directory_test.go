package licensee_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hanksha/court-booking-backend/licensee"
	lc_mocks "github.com/hanksha/court-booking-backend/licensee/mocks"
	"github.com/hanksha/court-booking-backend/upstream"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var roster = []upstream.Licensee{
	{UserID: "u2", Email: "Bob@Club.fr", FirstName: "Bob", LastName: "Martin"},
	{UserID: "u1", Email: "jane@club.fr", FirstName: "Jane", LastName: "Durand"},
}

// blockingSource holds every fetch until released so concurrent callers pile up.
type blockingSource struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *blockingSource) FetchLicensees(ctx context.Context) ([]upstream.Licensee, error) {
	s.calls.Add(1)
	<-s.release
	return roster, nil
}

func TestDirectoryInitialize(t *testing.T) {
	t.Run("concurrent callers share one fetch", func(t *testing.T) {
		source := &blockingSource{release: make(chan struct{})}
		directory := licensee.NewDirectory(source)

		var wg sync.WaitGroup
		errs := make(chan error, 20)

		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- directory.Initialize(context.Background())
			}()
		}

		close(source.release)
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		require.Equal(t, int32(1), source.calls.Load())
		require.True(t, directory.IsInitialized())
	})

	t.Run("already initialized does not fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := lc_mocks.NewMockRosterSource(ctrl)
		source.EXPECT().FetchLicensees(gomock.Any()).Return(roster, nil).Times(1)
		directory := licensee.NewDirectory(source)

		require.NoError(t, directory.Initialize(context.Background()))
		require.NoError(t, directory.Initialize(context.Background()))
	})

	t.Run("failure is not memoized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := lc_mocks.NewMockRosterSource(ctrl)
		gomock.InOrder(
			source.EXPECT().FetchLicensees(gomock.Any()).Return(nil, upstream.ErrUpstreamUnavailable),
			source.EXPECT().FetchLicensees(gomock.Any()).Return(roster, nil),
		)
		directory := licensee.NewDirectory(source)

		err := directory.Initialize(context.Background())
		require.ErrorIs(t, err, upstream.ErrUpstream)
		require.False(t, directory.IsInitialized())

		require.NoError(t, directory.Initialize(context.Background()))
		require.True(t, directory.IsInitialized())
	})

	t.Run("canceled caller does not cancel the shared fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		source := lc_mocks.NewMockRosterSource(ctrl)
		source.EXPECT().FetchLicensees(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]upstream.Licensee, error) {
			require.NoError(t, ctx.Err())
			return roster, nil
		}).Times(1)

		require.NoError(t, licensee.NewDirectory(source).Initialize(ctx))
	})
}

func TestDirectoryLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := lc_mocks.NewMockRosterSource(ctrl)
	source.EXPECT().FetchLicensees(gomock.Any()).Return(roster, nil).Times(1)
	directory := licensee.NewDirectory(source)
	ctx := context.Background()

	require.False(t, directory.IsInitialized())

	jane, found, err := directory.ByID(ctx, "u1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Jane Durand", jane.FullName())
	require.True(t, directory.IsInitialized())

	bob, found, err := directory.ByEmail(ctx, " bob@club.FR")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "u2", bob.UserID)

	_, found, err = directory.ByID(ctx, "ghost")
	require.NoError(t, err)
	require.False(t, found)

	rows, err := directory.Rows(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"u2", "u1"}, []string{rows[0].Licensee.UserID, rows[1].Licensee.UserID})
}

func TestDirectoryKeepsIgnoredRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withNoise := append([]upstream.Licensee{}, roster...)
	withNoise = append(withNoise,
		upstream.Licensee{UserID: " ", Email: "nobody@club.fr"},
		upstream.Licensee{UserID: "u2", Email: "other@club.fr", FirstName: "Bobby", LastName: "Martin"},
	)

	source := lc_mocks.NewMockRosterSource(ctrl)
	source.EXPECT().FetchLicensees(gomock.Any()).Return(withNoise, nil).Times(1)
	directory := licensee.NewDirectory(source)
	ctx := context.Background()

	rows, err := directory.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.False(t, rows[2].Duplicate)
	require.Empty(t, rows[2].Licensee.UserID)
	require.True(t, rows[3].Duplicate)

	bob, found, err := directory.ByID(ctx, "u2")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Bob", bob.FirstName)

	_, found, err = directory.ByEmail(ctx, "other@club.fr")
	require.NoError(t, err)
	require.False(t, found)
}

func TestDirectoryReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renamed := []upstream.Licensee{{UserID: "u1", Email: "jane@club.fr", FirstName: "Jane", LastName: "Moreau"}}

	source := lc_mocks.NewMockRosterSource(ctrl)
	gomock.InOrder(
		source.EXPECT().FetchLicensees(gomock.Any()).Return(roster, nil),
		source.EXPECT().FetchLicensees(gomock.Any()).Return(renamed, nil),
	)
	directory := licensee.NewDirectory(source)
	ctx := context.Background()

	require.NoError(t, directory.Initialize(ctx))
	require.NoError(t, directory.Reload(ctx))

	jane, _, err := directory.ByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "Moreau", jane.LastName)

	_, found, err := directory.ByID(ctx, "u2")
	require.NoError(t, err)
	require.False(t, found)
}

func TestDirectoryLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := lc_mocks.NewMockRosterSource(ctrl)
	source.EXPECT().FetchLicensees(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	_, _, err := licensee.NewDirectory(source).ByID(context.Background(), "u1")

	require.Error(t, err)
}

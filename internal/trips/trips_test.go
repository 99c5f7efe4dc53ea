package trips_test

import (
	"context"
	"testing"
	"time"

	"github.com/evstation/rental-service/internal/cache"
	"github.com/evstation/rental-service/internal/errs"
	"github.com/evstation/rental-service/internal/model"
	"github.com/evstation/rental-service/internal/queue"
	"github.com/evstation/rental-service/internal/trips"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAPI struct {
	bookings []model.Booking
	err      error
	calls    int
}

func (f *fakeAPI) MyBookings(context.Context) ([]model.Booking, int, error) {
	f.calls++
	if f.err != nil {
		return nil, 503, f.err
	}
	return f.bookings, 200, nil
}

type fakeCache struct {
	snap  map[string]cache.Snapshot
	saved int
}

func newFakeCache() *fakeCache {
	return &fakeCache{snap: make(map[string]cache.Snapshot)}
}

func (f *fakeCache) Save(_ context.Context, userID string, bookings []model.Booking) error {
	f.saved++
	f.snap[userID] = cache.Snapshot{Bookings: bookings, FetchedAt: time.Now(), TTL: 5 * time.Minute}
	return nil
}

func (f *fakeCache) Get(_ context.Context, userID string) (cache.Snapshot, error) {
	s, ok := f.snap[userID]
	if !ok {
		return cache.Snapshot{}, errs.ErrNotFound
	}
	return s, nil
}

type fakeNet struct{ online bool }

func (f *fakeNet) Online() bool { return f.online }

type memStore struct {
	actions map[string][]queue.Action
}

func newMemStore() *memStore { return &memStore{actions: make(map[string][]queue.Action)} }

func (s *memStore) Load(_ context.Context, userID string) ([]queue.Action, error) {
	return append([]queue.Action(nil), s.actions[userID]...), nil
}

func (s *memStore) Replace(_ context.Context, userID string, actions []queue.Action) error {
	s.actions[userID] = actions
	return nil
}

func booking(code, vehicle string, status model.BookingStatus, createdAt time.Time) model.Booking {
	return model.Booking{
		ID:          "id-" + code,
		BookingCode: code,
		VehicleName: vehicle,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

func newService(api *fakeAPI, c *fakeCache, net *fakeNet, replay trips.Replay) (*trips.Service, *memStore) {
	store := newMemStore()
	q := queue.New(store, 3, zap.NewExample())
	if replay == nil {
		replay = func(context.Context, queue.Action) error { return nil }
	}
	return trips.NewService(api, c, q, net, replay, zap.NewExample()), store
}

func TestLoadBookings_OnlineRefreshesCache(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{bookings: []model.Booking{booking("BK-1", "Klara S", model.StatusPending, time.Now())}}
	c := newFakeCache()
	svc, _ := newService(api, c, &fakeNet{online: true}, nil)

	res, err := svc.LoadBookings(context.Background(), "u-1")
	require.NoError(t, err)
	require.False(t, res.FromCache)
	require.Len(t, res.Bookings, 1)
	require.Equal(t, 1, c.saved)
}

func TestLoadBookings_FetchFailureKeepsCachedData(t *testing.T) {
	t.Parallel()
	c := newFakeCache()
	require.NoError(t, c.Save(context.Background(), "u-1",
		[]model.Booking{booking("BK-1", "Klara S", model.StatusConfirmed, time.Now())}))

	api := &fakeAPI{err: errors.New("backend down")}
	svc, _ := newService(api, c, &fakeNet{online: true}, nil)

	res, err := svc.LoadBookings(context.Background(), "u-1")
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrOffline)
	require.True(t, res.FromCache)
	require.Len(t, res.Bookings, 1)
}

func TestLoadBookings_OfflineServesSnapshotWithoutNetworkCall(t *testing.T) {
	t.Parallel()
	c := newFakeCache()
	require.NoError(t, c.Save(context.Background(), "u-1",
		[]model.Booking{booking("BK-1", "Klara S", model.StatusStarted, time.Now())}))

	api := &fakeAPI{}
	svc, _ := newService(api, c, &fakeNet{online: false}, nil)

	res, err := svc.LoadBookings(context.Background(), "u-1")
	require.NoError(t, err)
	require.True(t, res.FromCache)
	require.Zero(t, api.calls, "offline load must skip the network entirely")
}

func TestLoadBookings_OfflineNoCacheIsDistinctError(t *testing.T) {
	t.Parallel()
	svc, _ := newService(&fakeAPI{}, newFakeCache(), &fakeNet{online: false}, nil)

	_, err := svc.LoadBookings(context.Background(), "u-1")
	require.ErrorIs(t, err, errs.ErrOffline)
}

func TestResync_DrainsQueueThenReloads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := &fakeAPI{}
	var replayed []string
	svc, store := newService(api, newFakeCache(), &fakeNet{online: true},
		func(_ context.Context, a queue.Action) error {
			replayed = append(replayed, a.Endpoint)
			return nil
		})

	q := queue.New(store, 3, zap.NewExample())
	_, err := q.Enqueue(ctx, "u-1", "PATCH", "/api/bookings/a/confirm", nil)
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, "u-1", "PATCH", "/api/bookings/b/start", nil)
	require.NoError(t, err)

	res, err := svc.Resync(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, 2, res.Successful)
	require.Equal(t, []string{"/api/bookings/a/confirm", "/api/bookings/b/start"}, replayed)
	require.Equal(t, 1, api.calls)
}

func TestApplyFilters(t *testing.T) {
	t.Parallel()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	list := []model.Booking{
		booking("BK-001", "VinFast Klara S", model.StatusPending, base),
		booking("BK-002", "VinFast Evo 200", model.StatusCompleted, base.Add(2*time.Hour)),
		booking("BK-003", "Yadea G5", model.StatusCompleted, base.Add(time.Hour)),
	}

	t.Run("identity filter returns all, newest first", func(t *testing.T) {
		t.Parallel()
		got := trips.ApplyFilters(list, model.StatusAll, "")
		require.Len(t, got, 3)
		require.Equal(t, "BK-002", got[0].BookingCode)
		require.Equal(t, "BK-003", got[1].BookingCode)
		require.Equal(t, "BK-001", got[2].BookingCode)
	})

	t.Run("status filter matches exactly", func(t *testing.T) {
		t.Parallel()
		got := trips.ApplyFilters(list, model.StatusCompleted, "")
		require.Len(t, got, 2)
		for _, b := range got {
			require.Equal(t, model.StatusCompleted, b.Status)
		}
	})

	t.Run("search matches booking code or vehicle name, case-insensitive", func(t *testing.T) {
		t.Parallel()
		got := trips.ApplyFilters(list, model.StatusAll, "klara")
		require.Len(t, got, 1)
		require.Equal(t, "BK-001", got[0].BookingCode)

		got = trips.ApplyFilters(list, model.StatusAll, "bk-00")
		require.Len(t, got, 3)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		once := trips.ApplyFilters(list, model.StatusCompleted, "vinfast")
		twice := trips.ApplyFilters(once, model.StatusCompleted, "vinfast")
		require.Equal(t, once, twice)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		t.Parallel()
		before := append([]model.Booking(nil), list...)
		_ = trips.ApplyFilters(list, model.StatusAll, "")
		require.Equal(t, before, list)
	})
}

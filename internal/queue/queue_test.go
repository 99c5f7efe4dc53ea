package queue_test

import (
	"context"
	"testing"

	"github.com/evstation/rental-service/internal/queue"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStore struct {
	actions map[string][]queue.Action
}

func newMemStore() *memStore {
	return &memStore{actions: make(map[string][]queue.Action)}
}

func (s *memStore) Load(_ context.Context, userID string) ([]queue.Action, error) {
	out := make([]queue.Action, len(s.actions[userID]))
	copy(out, s.actions[userID])
	return out, nil
}

func (s *memStore) Replace(_ context.Context, userID string, actions []queue.Action) error {
	s.actions[userID] = actions
	return nil
}

func TestQueue_DrainReplaysInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	q := queue.New(newMemStore(), 3, zap.NewExample())

	const user = "u-1"
	for _, ep := range []string{"/api/bookings/a/confirm", "/api/bookings/b/start", "/api/bookings/c/complete"} {
		_, err := q.Enqueue(ctx, user, "PATCH", ep, nil)
		require.NoError(t, err)
	}

	var called []string
	res, err := q.Drain(ctx, user, func(_ context.Context, a queue.Action) error {
		called = append(called, a.Endpoint)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, queue.Result{Successful: 3}, res)
	require.Equal(t, []string{
		"/api/bookings/a/confirm",
		"/api/bookings/b/start",
		"/api/bookings/c/complete",
	}, called)

	st, err := q.Stats(ctx, user)
	require.NoError(t, err)
	require.Zero(t, st.Total)
}

func TestQueue_DrainKeepsFailedWithRetryCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newMemStore()
	q := queue.New(store, 3, zap.NewExample())

	const user = "u-2"
	_, err := q.Enqueue(ctx, user, "PATCH", "/api/bookings/a/confirm", nil)
	require.NoError(t, err)

	res, err := q.Drain(ctx, user, func(context.Context, queue.Action) error {
		return errors.New("still offline at the backend")
	})
	require.NoError(t, err)
	require.Equal(t, queue.Result{Failed: 1}, res)

	left, err := store.Load(ctx, user)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, 1, left[0].RetryCount)
}

func TestQueue_DrainDiscardsOverBudgetWithoutCall(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newMemStore()
	q := queue.New(store, 2, zap.NewExample())

	const user = "u-3"
	_, err := q.Enqueue(ctx, user, "PATCH", "/api/bookings/a/confirm", nil)
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, user, "PATCH", "/api/bookings/b/start", nil)
	require.NoError(t, err)

	// burn the retry budget of both entries
	for i := 0; i < 2; i++ {
		_, err = q.Drain(ctx, user, func(context.Context, queue.Action) error {
			return errors.New("replay failed")
		})
		require.NoError(t, err)
	}

	calls := 0
	res, err := q.Drain(ctx, user, func(context.Context, queue.Action) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, calls, "spent entries must not produce calls")
	require.Zero(t, res.Successful)

	left, err := store.Load(ctx, user)
	require.NoError(t, err)
	require.Empty(t, left)
}

func TestQueue_DrainMixedOutcomes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newMemStore()
	q := queue.New(store, 3, zap.NewExample())

	const user = "u-4"
	_, err := q.Enqueue(ctx, user, "PATCH", "/api/bookings/ok/confirm", nil)
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, user, "PATCH", "/api/bookings/bad/start", nil)
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, user, "PATCH", "/api/bookings/ok2/complete", nil)
	require.NoError(t, err)

	res, err := q.Drain(ctx, user, func(_ context.Context, a queue.Action) error {
		if a.Endpoint == "/api/bookings/bad/start" {
			return errors.New("backend rejected")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, queue.Result{Successful: 2, Failed: 1}, res)

	left, err := store.Load(ctx, user)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, "/api/bookings/bad/start", left[0].Endpoint)
}

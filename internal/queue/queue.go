// Package queue persists staff actions attempted while offline and
// replays them in enqueue order once connectivity returns. An entry
// survives failed replays until its retry budget is spent, then it is
// discarded for good.
package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Action struct {
	ID         string    `json:"id"`
	Endpoint   string    `json:"endpoint"`
	Method     string    `json:"method"`
	Payload    []byte    `json:"payload,omitempty"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
	RetryCount int       `json:"retryCount"`
	MaxRetries int       `json:"maxRetries"`
}

// Store is the persistence behind the queue. The redis implementation is
// the production one; tests use an in-memory store.
type Store interface {
	Load(ctx context.Context, userID string) ([]Action, error)
	Replace(ctx context.Context, userID string, actions []Action) error
}

// UserLister is implemented by stores that can enumerate users with
// pending actions. Reconnect-triggered replay needs it.
type UserLister interface {
	Users(ctx context.Context) ([]string, error)
}

type Stats struct {
	Total  int        `json:"total"`
	Failed int        `json:"failed"`
	Oldest *time.Time `json:"oldest,omitempty"`
}

type Result struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Discarded  int `json:"discarded"`
}

type Queue struct {
	store      Store
	maxRetries int
	log        *zap.Logger
}

func New(store Store, maxRetries int, log *zap.Logger) *Queue {
	return &Queue{store: store, maxRetries: maxRetries, log: log.Named("queue")}
}

// Enqueue appends a deferred mutation for the user. Order of enqueue is
// order of replay.
func (q *Queue) Enqueue(ctx context.Context, userID, method, endpoint string, payload []byte) (Action, error) {
	actions, err := q.store.Load(ctx, userID)
	if err != nil {
		return Action{}, err
	}
	a := Action{
		ID:         uuid.NewString(),
		Endpoint:   endpoint,
		Method:     method,
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
		MaxRetries: q.maxRetries,
	}
	if err := q.store.Replace(ctx, userID, append(actions, a)); err != nil {
		return Action{}, err
	}
	q.log.Debug("action enqueued",
		zap.String("id", a.ID),
		zap.String("method", method),
		zap.String("endpoint", endpoint))
	return a, nil
}

// Drain replays every queued action strictly in enqueue order, one at a
// time, awaiting each result. A successful replay removes the entry; a
// failed one keeps it with an incremented retry counter. Entries at or
// past their retry budget are dropped without issuing a call.
func (q *Queue) Drain(ctx context.Context, userID string, do func(ctx context.Context, a Action) error) (Result, error) {
	actions, err := q.store.Load(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	var res Result
	remaining := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.RetryCount >= a.MaxRetries {
			res.Discarded++
			q.log.Warn("action dropped, retry budget spent", zap.String("id", a.ID))
			continue
		}
		if err := do(ctx, a); err != nil {
			a.RetryCount++
			res.Failed++
			if a.RetryCount >= a.MaxRetries {
				res.Discarded++
				q.log.Warn("action dropped after final retry",
					zap.String("id", a.ID), zap.Error(err))
				continue
			}
			q.log.Debug("action replay failed, kept",
				zap.String("id", a.ID),
				zap.Int("retryCount", a.RetryCount),
				zap.Error(err))
			remaining = append(remaining, a)
			continue
		}
		res.Successful++
	}

	if err := q.store.Replace(ctx, userID, remaining); err != nil {
		return res, err
	}
	return res, nil
}

// PendingUsers lists users that still have queued actions, when the
// store supports enumeration. Stores that do not get an empty list.
func (q *Queue) PendingUsers(ctx context.Context) ([]string, error) {
	lister, ok := q.store.(UserLister)
	if !ok {
		return nil, nil
	}
	return lister.Users(ctx)
}

func (q *Queue) Stats(ctx context.Context, userID string) (Stats, error) {
	actions, err := q.store.Load(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Total: len(actions)}
	for _, a := range actions {
		if a.RetryCount >= a.MaxRetries {
			st.Failed++
		}
		if st.Oldest == nil || a.EnqueuedAt.Before(*st.Oldest) {
			t := a.EnqueuedAt
			st.Oldest = &t
		}
	}
	return st, nil
}

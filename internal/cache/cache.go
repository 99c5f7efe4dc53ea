// Package cache mirrors the last successfully fetched booking list per
// user in redis. The snapshot is advisory: reads report staleness instead
// of erroring, and nothing in the gateway ever mutates state based on it.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/evstation/rental-service/internal/errs"
	"github.com/evstation/rental-service/internal/model"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "cache:my_bookings:"

type Snapshot struct {
	Bookings  []model.Booking `json:"bookings"`
	FetchedAt time.Time       `json:"fetchedAt"`
	TTL       time.Duration   `json:"ttl"`
}

// Stale reports whether the snapshot outlived its TTL. A stale snapshot
// is still readable; callers decide whether to show it.
func (s Snapshot) Stale(now time.Time) bool {
	return now.After(s.FetchedAt.Add(s.TTL))
}

type BookingCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func New(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *BookingCache {
	return &BookingCache{rdb: rdb, ttl: ttl, log: log.Named("cache")}
}

// Save overwrites the user's snapshot. Last write wins; the entry is kept
// past its TTL on purpose so it can serve as an offline fallback.
func (c *BookingCache) Save(ctx context.Context, userID string, bookings []model.Booking) error {
	snap := Snapshot{
		Bookings:  bookings,
		FetchedAt: time.Now().UTC(),
		TTL:       c.ttl,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}
	if err := c.rdb.Set(ctx, keyPrefix+userID, data, 0).Err(); err != nil {
		return errors.Wrap(err, "save snapshot")
	}
	return nil
}

// Get returns the user's snapshot, reporting errs.ErrNotFound when none
// was ever saved.
func (c *BookingCache) Get(ctx context.Context, userID string) (Snapshot, error) {
	data, err := c.rdb.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, errs.ErrNotFound
		}
		return Snapshot{}, errors.Wrap(err, "read snapshot")
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	return snap, nil
}

func (c *BookingCache) Remove(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, keyPrefix+userID).Err()
}

// Package trips serves the "my bookings" list with offline fallback.
// The live API is the source of truth; the cache is a read-only snapshot
// for first paint and for riding out connectivity gaps.
package trips

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/evstation/rental-service/internal/cache"
	"github.com/evstation/rental-service/internal/errs"
	"github.com/evstation/rental-service/internal/model"
	"github.com/evstation/rental-service/internal/queue"
	"go.uber.org/zap"
)

type BookingAPI interface {
	MyBookings(ctx context.Context) ([]model.Booking, int, error)
}

type Cache interface {
	Save(ctx context.Context, userID string, bookings []model.Booking) error
	Get(ctx context.Context, userID string) (cache.Snapshot, error)
}

type Network interface {
	Online() bool
}

// Replay delivers one queued offline action to the live API.
type Replay func(ctx context.Context, a queue.Action) error

type ListResult struct {
	Bookings  []model.Booking `json:"bookings"`
	FromCache bool            `json:"fromCache"`
	Stale     bool            `json:"stale"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

type Service struct {
	api    BookingAPI
	cache  Cache
	queue  *queue.Queue
	net    Network
	replay Replay
	log    *zap.Logger
}

func NewService(api BookingAPI, c Cache, q *queue.Queue, net Network, replay Replay, log *zap.Logger) *Service {
	return &Service{
		api:    api,
		cache:  c,
		queue:  q,
		net:    net,
		replay: replay,
		log:    log.Named("trips"),
	}
}

// LoadBookings resolves the user's booking list.
//
// Online: fetch from the API, overwrite the snapshot, return fresh data.
// On a fetch failure the cached snapshot (if any) is returned together
// with the error so the caller can keep stale data visible.
// Offline: serve the snapshot without touching the network; no snapshot
// at all is the distinct errs.ErrOffline case.
func (s *Service) LoadBookings(ctx context.Context, userID string) (ListResult, error) {
	snap, snapErr := s.cache.Get(ctx, userID)

	if !s.net.Online() {
		if snapErr != nil {
			return ListResult{}, errs.ErrOffline
		}
		return ListResult{
			Bookings:  snap.Bookings,
			FromCache: true,
			Stale:     snap.Stale(time.Now()),
			FetchedAt: snap.FetchedAt,
		}, nil
	}

	list, _, err := s.api.MyBookings(ctx)
	if err != nil {
		s.log.Warn("booking list fetch failed", zap.String("userID", userID), zap.Error(err))
		if snapErr == nil {
			return ListResult{
				Bookings:  snap.Bookings,
				FromCache: true,
				Stale:     snap.Stale(time.Now()),
				FetchedAt: snap.FetchedAt,
			}, err
		}
		return ListResult{}, err
	}

	if err := s.cache.Save(ctx, userID, list); err != nil {
		// cache is best effort, the fresh list still goes out
		s.log.Warn("booking snapshot save failed", zap.String("userID", userID), zap.Error(err))
	}
	return ListResult{Bookings: list, FetchedAt: time.Now().UTC()}, nil
}

// Resync reloads the list and drains the offline queue. Wired to the
// connectivity monitor's reconnect event and to the manual sync endpoint.
func (s *Service) Resync(ctx context.Context, userID string) (queue.Result, error) {
	res, err := s.queue.Drain(ctx, userID, s.replay)
	if err != nil {
		return res, err
	}
	if _, err := s.LoadBookings(ctx, userID); err != nil {
		s.log.Warn("post-drain reload failed", zap.String("userID", userID), zap.Error(err))
	}
	return res, nil
}

// ApplyFilters is pure: it never mutates its input and identical inputs
// yield identical output ordering. Status matches exactly (ALL or empty
// passes everything), the query is a case-insensitive substring match on
// booking code or vehicle name, and the result is always sorted newest
// first by creation time.
func ApplyFilters(list []model.Booking, status model.BookingStatus, query string) []model.Booking {
	out := make([]model.Booking, 0, len(list))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, b := range list {
		if status != "" && status != model.StatusAll && b.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.BookingCode), q) &&
			!strings.Contains(strings.ToLower(b.VehicleName), q) {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Package netmon watches backend reachability, the gateway's stand-in for
// the device network sensor. Components ask Online() before issuing
// network calls and subscribe to the disconnected-to-connected transition
// to trigger resync.
package netmon

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/evstation/rental-service/config"
	"go.uber.org/zap"
)

// Probe reports nil when the backend is reachable.
type Probe func(ctx context.Context) error

type Monitor struct {
	probe    Probe
	interval time.Duration
	log      *zap.Logger

	mu        sync.RWMutex
	online    bool
	reconnect []func(ctx context.Context)
}

func New(probe Probe, interval time.Duration, log *zap.Logger) *Monitor {
	return &Monitor{
		probe:    probe,
		interval: interval,
		log:      log.Named("netmon"),
		online:   true,
	}
}

// HTTPProbe checks the backend health endpoint.
func HTTPProbe(cfg config.Backend) Probe {
	client := &http.Client{Timeout: 5 * time.Second}
	url := fmt.Sprintf("http://%s/manage/health", net.JoinHostPort(cfg.Host, cfg.Port))
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("backend health: %s", resp.Status)
		}
		return nil
	}
}

func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// OnReconnect registers a callback fired after every transition from
// disconnected to connected. Callbacks run sequentially on the monitor
// goroutine.
func (m *Monitor) OnReconnect(fn func(ctx context.Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reconnect = append(m.reconnect, fn)
}

// Run probes until ctx is done. Blocking; callers start it on its own
// goroutine.
func (m *Monitor) Run(ctx context.Context) {
	m.check(ctx)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *Monitor) check(ctx context.Context) {
	err := m.probe(ctx)

	m.mu.Lock()
	was := m.online
	m.online = err == nil
	callbacks := m.reconnect
	m.mu.Unlock()

	switch {
	case was && err != nil:
		m.log.Warn("connectivity lost", zap.Error(err))
	case !was && err == nil:
		m.log.Info("connectivity restored")
		for _, fn := range callbacks {
			fn(ctx)
		}
	}
}

// SetOnline overrides the sensed state. Used by tests and by handlers
// that learn about connectivity from a failed call before the next probe.
func (m *Monitor) SetOnline(ctx context.Context, online bool) {
	m.mu.Lock()
	was := m.online
	m.online = online
	callbacks := m.reconnect
	m.mu.Unlock()

	if !was && online {
		for _, fn := range callbacks {
			fn(ctx)
		}
	}
}

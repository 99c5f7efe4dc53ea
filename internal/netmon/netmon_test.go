package netmon_test

import (
	"context"
	"testing"

	"github.com/evstation/rental-service/internal/netmon"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMonitor_ReconnectFiresOnTransitionOnly(t *testing.T) {
	t.Parallel()
	m := netmon.New(func(context.Context) error { return nil }, 0, zap.NewExample())

	fired := 0
	m.OnReconnect(func(context.Context) { fired++ })

	ctx := context.Background()
	m.SetOnline(ctx, true) // already online, no transition
	require.Zero(t, fired)

	m.SetOnline(ctx, false)
	require.False(t, m.Online())
	require.Zero(t, fired)

	m.SetOnline(ctx, true)
	require.True(t, m.Online())
	require.Equal(t, 1, fired)

	// staying online does not re-fire
	m.SetOnline(ctx, true)
	require.Equal(t, 1, fired)
}

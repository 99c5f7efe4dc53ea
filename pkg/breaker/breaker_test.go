package breaker_test

import (
	"testing"
	"time"

	"github.com/evstation/rental-service/pkg/breaker"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_OpensOnFailures(t *testing.T) {
	t.Parallel()
	cb := breaker.New(10, time.Minute, 0.5, 2)

	ok := func() error { return nil }
	fail := func() error { return errors.New("downstream error") }

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(ok))
	}
	for i := 0; i < 5; i++ {
		require.Error(t, cb.Call(fail))
	}
	// window is now at the failure percentile, breaker must fail fast
	err := cb.Call(ok)
	require.ErrorIs(t, err, breaker.ErrOpen)
}

func TestCircuitBreaker_RecoversAfterTimeout(t *testing.T) {
	t.Parallel()
	cb := breaker.New(4, 10*time.Millisecond, 0.5, 1)

	fail := func() error { return errors.New("downstream error") }
	ok := func() error { return nil }

	for i := 0; i < 4; i++ {
		_ = cb.Call(fail)
	}
	require.ErrorIs(t, cb.Call(ok), breaker.ErrOpen)

	time.Sleep(20 * time.Millisecond)

	// half-open probe succeeds, then enough successes close the breaker
	require.NoError(t, cb.Call(ok))
	require.NoError(t, cb.Call(ok))
	require.NoError(t, cb.Call(ok))
}

func TestCircuitBreaker_Reset(t *testing.T) {
	t.Parallel()
	cb := breaker.New(2, time.Minute, 0.5, 1)
	fail := func() error { return errors.New("downstream error") }
	_ = cb.Call(fail)
	_ = cb.Call(fail)
	require.ErrorIs(t, cb.Call(func() error { return nil }), breaker.ErrOpen)

	cb.Reset()
	require.NoError(t, cb.Call(func() error { return nil }))
}

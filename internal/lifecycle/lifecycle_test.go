package lifecycle_test

import (
	"testing"

	"github.com/evstation/rental-service/internal/lifecycle"
	"github.com/evstation/rental-service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestAllowedNext(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		current model.BookingStatus
		want    []model.BookingStatus
	}{
		{
			name:    "pending",
			current: model.StatusPending,
			want:    []model.BookingStatus{model.StatusConfirmed, model.StatusCancelled},
		},
		{
			name:    "confirmed",
			current: model.StatusConfirmed,
			want:    []model.BookingStatus{model.StatusStarted, model.StatusCancelled},
		},
		{
			name:    "started",
			current: model.StatusStarted,
			want:    []model.BookingStatus{model.StatusCompleted, model.StatusCancelled},
		},
		{
			name:    "completed is terminal",
			current: model.StatusCompleted,
			want:    []model.BookingStatus{},
		},
		{
			name:    "cancelled is terminal",
			current: model.StatusCancelled,
			want:    []model.BookingStatus{},
		},
		{
			name:    "unknown status",
			current: model.BookingStatus("WAT"),
			want:    nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, lifecycle.AllowedNext(tt.current))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	require.True(t, lifecycle.IsTerminal(model.StatusCompleted))
	require.True(t, lifecycle.IsTerminal(model.StatusCancelled))
	require.False(t, lifecycle.IsTerminal(model.StatusPending))
	require.False(t, lifecycle.IsTerminal(model.StatusConfirmed))
	require.False(t, lifecycle.IsTerminal(model.StatusStarted))
}

func TestCanTransition(t *testing.T) {
	t.Parallel()
	require.True(t, lifecycle.CanTransition(model.StatusPending, model.StatusConfirmed))
	require.True(t, lifecycle.CanTransition(model.StatusStarted, model.StatusCancelled))

	// no skipping forward
	require.False(t, lifecycle.CanTransition(model.StatusPending, model.StatusStarted))
	require.False(t, lifecycle.CanTransition(model.StatusPending, model.StatusCompleted))
	// no moving backward
	require.False(t, lifecycle.CanTransition(model.StatusConfirmed, model.StatusPending))
	// nothing out of a terminal state
	require.False(t, lifecycle.CanTransition(model.StatusCompleted, model.StatusCancelled))
	require.False(t, lifecycle.CanTransition(model.StatusCancelled, model.StatusPending))
}

func TestEndpoint(t *testing.T) {
	t.Parallel()
	for status, want := range map[model.BookingStatus]string{
		model.StatusConfirmed: "confirm",
		model.StatusStarted:   "start",
		model.StatusCompleted: "complete",
		model.StatusCancelled: "cancel",
	} {
		got, ok := lifecycle.Endpoint(status)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := lifecycle.Endpoint(model.StatusPending)
	require.False(t, ok)
}

func TestAdvisory(t *testing.T) {
	t.Parallel()
	require.NotEmpty(t, lifecycle.Advisory(model.StatusCancelled))
	require.NotEmpty(t, lifecycle.Advisory(model.StatusCompleted))
	require.Empty(t, lifecycle.Advisory(model.StatusConfirmed))
}

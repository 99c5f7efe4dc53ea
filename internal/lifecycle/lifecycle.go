// Package lifecycle is the single source of truth for the booking status
// graph. Display logic and submit guards both read the same table, so the
// allowed-destination set can never diverge between the two.
package lifecycle

import (
	"github.com/evstation/rental-service/internal/model"
)

// transitions lists the legal destination statuses per current status.
// Terminal statuses map to an empty set.
var transitions = map[model.BookingStatus][]model.BookingStatus{
	model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
	model.StatusConfirmed: {model.StatusStarted, model.StatusCancelled},
	model.StatusStarted:   {model.StatusCompleted, model.StatusCancelled},
	model.StatusCompleted: {},
	model.StatusCancelled: {},
}

// AllowedNext returns the destinations reachable from the given status.
// Unknown statuses get an empty set.
func AllowedNext(current model.BookingStatus) []model.BookingStatus {
	next, ok := transitions[current]
	if !ok {
		return nil
	}
	out := make([]model.BookingStatus, len(next))
	copy(out, next)
	return out
}

func CanTransition(from, to model.BookingStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func IsTerminal(s model.BookingStatus) bool {
	return len(transitions[s]) == 0
}

// Advisory returns the warning text the UI must show before committing a
// transition to the given destination. Purely informational, never gates
// the request.
func Advisory(to model.BookingStatus) string {
	switch to {
	case model.StatusCancelled:
		return "Cancelling a booking cannot be undone."
	case model.StatusCompleted:
		return "Verify vehicle condition and outstanding fees before completing."
	default:
		return ""
	}
}

// Endpoint maps a destination status to the backend mutation path suffix
// for PATCH /api/bookings/{bookingId}/{suffix}.
func Endpoint(to model.BookingStatus) (string, bool) {
	switch to {
	case model.StatusConfirmed:
		return "confirm", true
	case model.StatusStarted:
		return "start", true
	case model.StatusCompleted:
		return "complete", true
	case model.StatusCancelled:
		return "cancel", true
	default:
		return "", false
	}
}

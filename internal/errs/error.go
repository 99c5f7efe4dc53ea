package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrOffline is the distinct "no network and no cached data" category.
	// It must never be reported as a generic backend failure.
	ErrOffline = errors.New("you are offline and no cached data is available")

	ErrTerminalStatus    = errors.New("booking is in a terminal status")
	ErrIllegalTransition = errors.New("status transition is not allowed")
)

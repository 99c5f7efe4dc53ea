package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed   state = 1
	open     state = 2
	halfOpen state = 3
)

var ErrOpen = errors.New("circuit breaker is open")

// CircuitBreaker guards calls to a downstream dependency. While open it
// fails fast with ErrOpen instead of issuing the call.
type CircuitBreaker interface {
	Call(fn func() error) error
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state state

	// sliding window of the last recordLength call results
	buffer []bool
	pos    int

	// share of failed calls in the window that opens the breaker
	percentile float64
	// how long the breaker stays open before probing again
	timeout         time.Duration
	lastAttemptedAt time.Time

	// consecutive successes in half-open required to close
	recoveryRequests int
	successCount     int
}

func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int) CircuitBreaker {
	return &circuitBreaker{
		state:            closed,
		buffer:           make([]bool, recordLength),
		percentile:       percentile,
		timeout:          timeout,
		recoveryRequests: recoveryRequests,
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == open {
		if time.Since(cb.lastAttemptedAt) > cb.timeout {
			cb.state = halfOpen
			cb.successCount = 0
		} else {
			cb.mu.Unlock()
			return ErrOpen
		}
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.buffer[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.buffer)

	if cb.state == halfOpen {
		if err != nil {
			cb.successCount = 0
			cb.state = open
			cb.lastAttemptedAt = time.Now()
		} else {
			cb.successCount++
			if cb.successCount > cb.recoveryRequests {
				cb.Reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range cb.buffer {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.buffer)) >= cb.percentile {
		cb.state = open
		cb.successCount = 0
		cb.lastAttemptedAt = time.Now()
	}

	return err
}

func (cb *circuitBreaker) Reset() {
	for i := range cb.buffer {
		cb.buffer[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = closed
}

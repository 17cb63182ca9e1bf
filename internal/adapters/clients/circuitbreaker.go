package clients

import (
	"sync"
	"time"

	"github.com/jsamuelsen/quotes-service/internal/platform/config"
)

// State is a circuit breaker state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker stops calls to a failing downstream.
//
//	closed    -> open       after MaxFailures consecutive failures
//	open      -> half-open  once Timeout has passed since the last failure
//	half-open -> closed     after HalfOpenLimit consecutive successes
//	half-open -> open       on any failure
//
// At most HalfOpenLimit probes are in flight while half-open.
type CircuitBreaker struct {
	cfg config.CircuitBreakerConfig

	mu          sync.Mutex
	state       State
	failures    int
	successes   int
	probes      int
	lastFailure time.Time
	onChange    func(from, to State)
	now         func() time.Time
}

// NewCircuitBreaker creates a closed breaker.
func NewCircuitBreaker(cfg config.CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = config.DefaultClientCircuitMaxFailures
	}
	if cfg.HalfOpenLimit < 1 {
		cfg.HalfOpenLimit = config.DefaultClientCircuitHalfOpenLimit
	}

	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to run after every transition. fn runs outside
// the breaker's lock.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	cb.onChange = fn
	cb.mu.Unlock()
}

// Allow reports whether a call may proceed. Every allowed call must be
// followed by exactly one Success or Failure.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()

	var (
		allowed bool
		from    = cb.state
	)

	switch cb.state {
	case StateClosed:
		allowed = true
	case StateOpen:
		if cb.now().Sub(cb.lastFailure) >= cb.cfg.Timeout {
			cb.set(StateHalfOpen)
			cb.probes = 1
			allowed = true
		}
	case StateHalfOpen:
		if cb.probes < cb.cfg.HalfOpenLimit {
			cb.probes++
			allowed = true
		}
	}

	cb.unlockAndNotify(from)

	return allowed
}

// Success records a completed call.
func (cb *CircuitBreaker) Success() {
	cb.mu.Lock()
	from := cb.state

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.probes--
		cb.successes++
		if cb.successes >= cb.cfg.HalfOpenLimit {
			cb.set(StateClosed)
		}
	}

	cb.unlockAndNotify(from)
}

// Failure records a failed call.
func (cb *CircuitBreaker) Failure() {
	cb.mu.Lock()
	from := cb.state
	cb.lastFailure = cb.now()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			cb.set(StateOpen)
		}
	case StateHalfOpen:
		cb.probes--
		cb.set(StateOpen)
	}

	cb.unlockAndNotify(from)
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// set changes state and resets the counters. Caller holds mu.
func (cb *CircuitBreaker) set(to State) {
	if cb.state == to {
		return
	}

	cb.state = to
	cb.failures = 0
	cb.successes = 0
	if to != StateHalfOpen {
		cb.probes = 0
	}
}

func (cb *CircuitBreaker) unlockAndNotify(from State) {
	to := cb.state
	fn := cb.onChange
	cb.mu.Unlock()

	if fn != nil && from != to {
		fn(from, to)
	}
}

package infra

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ── Circuit Breaker ───────────────────────────────────────────────────────────
// Guards calls to the image host. While open every call fails immediately with
// ErrCircuitOpen; after OpenTimeout one probe is let through (half-open).
// A breaker never retries a call.

// BreakerState is the current breaker state.
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrCircuitOpen = errors.New("circuit breaker is open")

type BreakerConfig struct {
	Name             string
	FailureThreshold int           // consecutive failures that open the breaker
	OpenTimeout      time.Duration // time spent open before a probe
}

// DefaultImageHostBreaker is tuned for an upload form: a handful of failures
// in a row means the host is down, and 30s is about how long an admin waits
// before trying again.
func DefaultImageHostBreaker() BreakerConfig {
	return BreakerConfig{Name: "image-host", FailureThreshold: 5, OpenTimeout: 30 * time.Second}
}

type CircuitBreaker struct {
	mu       sync.Mutex
	cfg      BreakerConfig
	state    BreakerState
	failures int
	openedAt time.Time
	probing  bool
	now      func() time.Time
}

func NewCircuitBreaker(cfg BreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// State reports the state, moving open to half-open once the timeout passed.
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.stateLocked()
}

func (cb *CircuitBreaker) stateLocked() BreakerState {
	if cb.state == BreakerOpen && cb.now().Sub(cb.openedAt) >= cb.cfg.OpenTimeout {
		cb.setState(BreakerHalfOpen)
	}
	return cb.state
}

// Execute runs fn unless the breaker is open. Only one probe runs while
// half-open; concurrent callers fast-fail until it reports back.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	switch cb.stateLocked() {
	case BreakerOpen:
		cb.mu.Unlock()
		return ErrCircuitOpen
	case BreakerHalfOpen:
		if cb.probing {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.probing = true
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.probing = false
	if err != nil {
		cb.failures++
		if cb.state == BreakerHalfOpen || cb.failures >= cb.cfg.FailureThreshold {
			cb.openedAt = cb.now()
			cb.setState(BreakerOpen)
		}
		return err
	}
	cb.failures = 0
	if cb.state != BreakerClosed {
		cb.setState(BreakerClosed)
	}
	return nil
}

func (cb *CircuitBreaker) setState(s BreakerState) {
	if cb.state == s {
		return
	}
	log.Warn().Str("breaker", cb.cfg.Name).Str("from", cb.state.String()).Str("to", s.String()).Msg("circuit breaker state change")
	cb.state = s
}

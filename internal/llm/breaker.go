package llm

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// ErrBreakerOpen is returned while the wrapped backend is being skipped.
var ErrBreakerOpen = errors.New("circuit breaker open")

type breakerState string

const (
	stateClosed   breakerState = "closed"
	stateOpen     breakerState = "open"
	stateHalfOpen breakerState = "half-open"
)

// BreakerBackend wraps a Backend with a circuit breaker: after a run of
// consecutive failures the backend is skipped for a cooldown window, which
// lets the chain fall straight through to the local fallback instead of
// paying a timeout on every request against a dead endpoint. One probe is
// allowed after the cooldown; its outcome decides the next state.
type BreakerBackend struct {
	inner Backend

	mu        sync.Mutex
	state     breakerState
	failures  int
	probing   bool
	openedAt  time.Time
	threshold int
	cooldown  time.Duration
}

func NewBreakerBackend(inner Backend, failureThreshold int, cooldown time.Duration) *BreakerBackend {
	if failureThreshold < 1 {
		failureThreshold = 3
	}
	if cooldown < time.Second {
		cooldown = time.Minute
	}
	return &BreakerBackend{
		inner:     inner,
		state:     stateClosed,
		threshold: failureThreshold,
		cooldown:  cooldown,
	}
}

func (b *BreakerBackend) Name() string {
	return b.inner.Name()
}

func (b *BreakerBackend) Generate(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error) {
	if err := b.beforeRequest(); err != nil {
		return "", err
	}
	text, err := b.inner.Generate(ctx, prompt, maxTokens, timeout)
	b.afterRequest(err)
	return text, err
}

func (b *BreakerBackend) beforeRequest() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return nil
	case stateOpen:
		if time.Since(b.openedAt) > b.cooldown {
			b.state = stateHalfOpen
			b.probing = true
			log.Printf("[CircuitBreaker] State: OPEN → HALF-OPEN (cooldown elapsed, probing %s)", b.inner.Name())
			return nil
		}
		return ErrBreakerOpen
	case stateHalfOpen:
		if b.probing {
			return ErrBreakerOpen
		}
		b.probing = true
		return nil
	}
	return nil
}

func (b *BreakerBackend) afterRequest(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateHalfOpen {
		b.probing = false
		if err != nil {
			b.state = stateOpen
			b.openedAt = time.Now()
			log.Printf("[CircuitBreaker] State: HALF-OPEN → OPEN (probe failed)")
		} else {
			b.state = stateClosed
			b.failures = 0
			log.Printf("[CircuitBreaker] State: HALF-OPEN → CLOSED (%s recovered)", b.inner.Name())
		}
		return
	}

	if err != nil {
		b.failures++
		if b.state == stateClosed && b.failures >= b.threshold {
			b.state = stateOpen
			b.openedAt = time.Now()
			log.Printf("[CircuitBreaker] State: CLOSED → OPEN (%d consecutive failures)", b.failures)
		}
		return
	}
	b.failures = 0
}

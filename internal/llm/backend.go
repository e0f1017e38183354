package llm

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Backend produces a reply for an assembled prompt. Implementations must
// either return text or fail within the given timeout — never hang.
type Backend interface {
	Name() string
	Generate(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error)
}

// Chain tries backends in priority order and falls through on failure.
// Which backend served a reply is invisible to callers; with a rule-based
// backend last, the chain as a whole cannot fail unless the caller's context
// is cancelled.
type Chain struct {
	backends []Backend
}

func NewChain(backends ...Backend) *Chain {
	return &Chain{backends: backends}
}

func (c *Chain) Generate(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error) {
	var lastErr error
	for _, b := range c.backends {
		text, err := b.Generate(ctx, prompt, maxTokens, timeout)
		if err == nil {
			return text, nil
		}
		lastErr = err
		// A cancelled caller gets no fallback reply; the exchange is aborted
		// so no state is committed for it.
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		log.Printf("[LLMChain] Backend %s failed, falling through: %v", b.Name(), err)
	}
	return "", fmt.Errorf("all backends failed: %w", lastErr)
}

package conversation

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for unknown or expired conversation identifiers.
var ErrNotFound = errors.New("conversation not found")

// WindowSize is the number of history entries returned to callers and fed
// back into prompts (at most 5 user + 5 bot messages).
const WindowSize = 10

// Store owns all conversation state. Lookups against an expired entry behave
// as ErrNotFound; implementations may evict lazily. Store methods serialize
// access to their own structures only — callers that need a whole exchange to
// be atomic with respect to other exchanges on the same identifier must hold
// their own per-identifier lock (see debate.Engine).
type Store interface {
	// Create registers a new conversation with a fresh identifier and a full
	// TTL window.
	Create(ctx context.Context, topic, stance string) (*Conversation, error)

	// Get returns a copy of the conversation, or ErrNotFound.
	Get(ctx context.Context, id string) (*Conversation, error)

	// Append adds one history entry without touching turn, summary or TTL.
	Append(ctx context.Context, id string, role Role, text string) error

	// Touch extends the TTL by a full window from now.
	Touch(ctx context.Context, id string) error

	// CommitExchange applies one completed exchange as a group: appends the
	// user and bot entries, replaces the summary, increments the turn counter
	// and refreshes the TTL. Returns a copy of the updated conversation.
	CommitExchange(ctx context.Context, id, userText, botText, summary string) (*Conversation, error)

	// ClearExpired removes conversations whose TTL passed before now and
	// returns how many were dropped. Backends with native expiry may report 0.
	ClearExpired(ctx context.Context, now time.Time) (int, error)
}

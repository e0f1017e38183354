package conversation

import "time"

// Role identifies the author of a history entry.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Entry is a single message in a conversation history.
type Entry struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Conversation holds the full state of one debate. Topic and Stance are fixed
// at creation; Summary stays under the compressor's cap; Turn counts completed
// user/bot exchanges and always equals the number of bot entries in History.
type Conversation struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Stance    string    `json:"stance"`
	Summary   string    `json:"summary"`
	Turn      int       `json:"turn"`
	History   []Entry   `json:"history"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the conversation's TTL has passed.
func (c *Conversation) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// RecentWindow returns a copy of the last n history entries, oldest first.
func (c *Conversation) RecentWindow(n int) []Entry {
	start := 0
	if len(c.History) > n {
		start = len(c.History) - n
	}
	window := make([]Entry, len(c.History)-start)
	copy(window, c.History[start:])
	return window
}

// Clone returns a deep copy so callers can read state without holding store locks.
func (c *Conversation) Clone() *Conversation {
	cp := *c
	cp.History = make([]Entry, len(c.History))
	copy(cp.History, c.History)
	return &cp
}

package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps all conversations in a process-local map. Expiry is lazy:
// an expired entry is dropped on the first lookup that sees it, or by the
// Sweeper if one is running.
type MemoryStore struct {
	mu    sync.RWMutex
	convs map[string]*Conversation
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory store with the given TTL window.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		convs: make(map[string]*Conversation),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, topic, stance string) (*Conversation, error) {
	conv := &Conversation{
		ID:        uuid.NewString(),
		Topic:     topic,
		Stance:    stance,
		History:   []Entry{},
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.mu.Lock()
	s.convs[conv.ID] = conv
	s.mu.Unlock()
	return conv.Clone(), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, err := s.liveLocked(id)
	if err != nil {
		return nil, err
	}
	return conv.Clone(), nil
}

func (s *MemoryStore) Append(ctx context.Context, id string, role Role, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, err := s.liveLocked(id)
	if err != nil {
		return err
	}
	conv.History = append(conv.History, Entry{Role: role, Text: text})
	return nil
}

func (s *MemoryStore) Touch(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, err := s.liveLocked(id)
	if err != nil {
		return err
	}
	conv.ExpiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) CommitExchange(ctx context.Context, id, userText, botText, summary string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, err := s.liveLocked(id)
	if err != nil {
		return nil, err
	}
	conv.History = append(conv.History,
		Entry{Role: RoleUser, Text: userText},
		Entry{Role: RoleBot, Text: botText},
	)
	conv.Summary = summary
	conv.Turn++
	conv.ExpiresAt = s.now().Add(s.ttl)
	return conv.Clone(), nil
}

func (s *MemoryStore) ClearExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, conv := range s.convs {
		if conv.Expired(now) {
			delete(s.convs, id)
			removed++
		}
	}
	return removed, nil
}

// liveLocked looks up id and evicts it if expired. Callers hold s.mu.
func (s *MemoryStore) liveLocked(id string) (*Conversation, error) {
	conv, ok := s.convs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if conv.Expired(s.now()) {
		delete(s.convs, id)
		return nil, ErrNotFound
	}
	return conv, nil
}

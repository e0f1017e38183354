package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const convKeyFmt = "conv:%s"

// RedisStore keeps conversations as JSON documents under a sliding Redis key
// expiry, so the TTL contract is enforced by Redis itself. It satisfies the
// same Store interface as MemoryStore and drops in via config without any
// engine changes.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func convKey(id string) string {
	return fmt.Sprintf(convKeyFmt, id)
}

func (s *RedisStore) Create(ctx context.Context, topic, stance string) (*Conversation, error) {
	conv := &Conversation{
		ID:        uuid.NewString(),
		Topic:     topic,
		Stance:    stance,
		History:   []Entry{},
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.write(ctx, conv, s.ttl); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Conversation, error) {
	raw, err := s.rdb.Get(ctx, convKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var conv Conversation
	if err := json.Unmarshal(raw, &conv); err != nil {
		return nil, fmt.Errorf("decode conversation %s: %w", id, err)
	}
	return &conv, nil
}

func (s *RedisStore) Append(ctx context.Context, id string, role Role, text string) error {
	conv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	conv.History = append(conv.History, Entry{Role: role, Text: text})
	// Keep the remaining expiry; Append alone does not refresh the TTL.
	return s.write(ctx, conv, redis.KeepTTL)
}

func (s *RedisStore) Touch(ctx context.Context, id string) error {
	ok, err := s.rdb.Expire(ctx, convKey(id), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis expire: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) CommitExchange(ctx context.Context, id, userText, botText, summary string) (*Conversation, error) {
	conv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	conv.History = append(conv.History,
		Entry{Role: RoleUser, Text: userText},
		Entry{Role: RoleBot, Text: botText},
	)
	conv.Summary = summary
	conv.Turn++
	conv.ExpiresAt = time.Now().Add(s.ttl)
	if err := s.write(ctx, conv, s.ttl); err != nil {
		return nil, err
	}
	return conv, nil
}

// ClearExpired is a no-op: Redis evicts expired keys natively.
func (s *RedisStore) ClearExpired(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func (s *RedisStore) write(ctx context.Context, conv *Conversation, ttl time.Duration) error {
	raw, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("encode conversation %s: %w", conv.ID, err)
	}
	if err := s.rdb.Set(ctx, convKey(conv.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

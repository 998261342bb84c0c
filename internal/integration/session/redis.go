package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
)

// DefaultSessionTTL is how long an abandoned dialogue survives before Redis
// expires it.
const DefaultSessionTTL = 30 * time.Minute

// RedisStore is a SessionStore backed by Redis, for deployments where
// dialogue turns may land on different nodes.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed session store. A non-positive
// ttl falls back to DefaultSessionTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

var _ adapter.SessionStore = (*RedisStore)(nil)

// Get retrieves the user's session, or (nil, nil) when none is in flight.
func (s *RedisStore) Get(ctx context.Context, userID int64) (*entity.ReportSession, error) {
	payload, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session entity.ReportSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Set stores the session with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, session *entity.ReportSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.UserID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Clear discards the user's session.
func (s *RedisStore) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("report_session:%d", userID)
}

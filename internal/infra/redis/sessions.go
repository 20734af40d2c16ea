package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps admin console sessions in redis with a TTL.
type SessionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewSessionStore(client *goredis.Client, ttl time.Duration) (*SessionStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &SessionStore{client: client, ttl: ttl}, nil
}

// Create issues a fresh opaque token bound to the admin id.
func (s *SessionStore) Create(ctx context.Context, adminID int64) (string, error) {
	token := uuid.NewString()
	key := sessionKeyPrefix + token

	if err := s.client.Set(ctx, key, strconv.FormatInt(adminID, 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Resolve maps a token to its admin id and refreshes the TTL.
func (s *SessionStore) Resolve(ctx context.Context, token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("%w: session token is required", domain.ErrUnauthorized)
	}

	key := sessionKeyPrefix + token
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, fmt.Errorf("%w: unknown session", domain.ErrUnauthorized)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load session: %w", err)
	}

	adminID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: corrupt session", domain.ErrUnauthorized)
	}

	_ = s.client.Expire(ctx, key, s.ttl).Err()

	return adminID, nil
}

// Delete invalidates a token. Deleting an unknown token is not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

package redisad

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"local_travel/internal/domain"
)

// Sessions maps opaque bearer tokens to user IDs. Tokens expire with the
// session TTL; logout deletes the key immediately.
type Sessions struct{ c *redis.Client }

func NewSessions(addr, pass string, db int) *Sessions {
	return &Sessions{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func NewSessionsWithClient(c *redis.Client) *Sessions { return &Sessions{c: c} }

func sessionKey(token string) string { return "session:" + token }

func (s *Sessions) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.c.Set(ctx, sessionKey(token), userID, ttl).Err()
}

func (s *Sessions) Resolve(ctx context.Context, token string) (string, error) {
	v, err := s.c.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return "", domain.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *Sessions) Delete(ctx context.Context, token string) error {
	return s.c.Del(ctx, sessionKey(token)).Err()
}

package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"local_travel/internal/domain"
)

// Notifications keeps per-user transient notifications in a Redis list.
// The whole list expires with the notification TTL; nothing here is durable.
type Notifications struct {
	c   *redis.Client
	ttl time.Duration
}

func NewNotifications(addr, pass string, db int, ttl time.Duration) *Notifications {
	return &Notifications{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), ttl: ttl}
}

func NewNotificationsWithClient(c *redis.Client, ttl time.Duration) *Notifications {
	return &Notifications{c: c, ttl: ttl}
}

func notificationsKey(userID string) string { return "notifications:" + userID }

func (n *Notifications) Push(ctx context.Context, userID string, note domain.Notification) error {
	b, err := json.Marshal(note)
	if err != nil {
		return err
	}
	key := notificationsKey(userID)
	if err := n.c.LPush(ctx, key, b).Err(); err != nil {
		return err
	}
	return n.c.Expire(ctx, key, n.ttl).Err()
}

func (n *Notifications) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	vals, err := n.c.LRange(ctx, notificationsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(vals))
	for _, v := range vals {
		var note domain.Notification
		if err := json.Unmarshal([]byte(v), &note); err != nil {
			continue // skip entries written by an older shape
		}
		out = append(out, note)
	}
	return out, nil
}

func (n *Notifications) MarkRead(ctx context.Context, userID, notificationID string) error {
	key := notificationsKey(userID)
	vals, err := n.c.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return err
	}
	for i, v := range vals {
		var note domain.Notification
		if err := json.Unmarshal([]byte(v), &note); err != nil {
			continue
		}
		if note.ID != notificationID {
			continue
		}
		note.Read = true
		b, err := json.Marshal(note)
		if err != nil {
			return err
		}
		return n.c.LSet(ctx, key, int64(i), b).Err()
	}
	return domain.ErrNotFound
}

func (n *Notifications) Clear(ctx context.Context, userID string) error {
	return n.c.Del(ctx, notificationsKey(userID)).Err()
}

package domain

import (
	"context"
	"time"
)

// Repositories are document stores keyed by ID plus the few query-by-field
// reads the services need. Uniqueness on (user, destination) for reviews and
// on email for users is enforced here.

type DestinationRepository interface {
	Put(ctx context.Context, d Destination) error
	Get(ctx context.Context, id string) (Destination, error)
	List(ctx context.Context, q DestinationQuery) ([]Destination, error)
	// UpdateRating writes the derived aggregate onto the destination record.
	UpdateRating(ctx context.Context, id string, rating float64, count int) error
	// ReplaceAll swaps the whole catalog (seed path).
	ReplaceAll(ctx context.Context, ds []Destination) error
	Count(ctx context.Context) (int, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r Review) error
	Update(ctx context.Context, r Review) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (Review, error)
	// GetOwned returns ErrNotFound for both a missing review and one owned
	// by someone else.
	GetOwned(ctx context.Context, id, userID string) (Review, error)
	ListByDestination(ctx context.Context, destinationID string) ([]Review, error)
	ListByUser(ctx context.Context, userID string) ([]Review, error)
	FindByUserAndDestination(ctx context.Context, userID, destinationID string) (Review, error)
	CountAll(ctx context.Context) (int, error)
	ListRecent(ctx context.Context, limit int) ([]Review, error)
}

type UserRepository interface {
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	Get(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type DestinationQuery struct {
	Category string // empty or "all" means no filter
	Search   string // case-insensitive match on name or description
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// SessionStore maps opaque bearer tokens to user IDs with a TTL.
type SessionStore interface {
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (string, error) // ErrUnauthorized if absent
	Delete(ctx context.Context, token string) error
}

// NotificationStore keeps per-user transient notifications.
type NotificationStore interface {
	Push(ctx context.Context, userID string, n Notification) error
	List(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	Clear(ctx context.Context, userID string) error
}

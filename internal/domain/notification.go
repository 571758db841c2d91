package domain

import "time"

// Notification is user-scoped and transient; it lives in the session store
// and is not durable beyond the session TTL.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

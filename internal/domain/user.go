package domain

import (
	"encoding/base64"
	"time"
)

type User struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Password  string      `json:"-"` // demo-grade plaintext credential
	Avatar    string      `json:"avatar"`
	Bio       string      `json:"bio"`
	Phone     string      `json:"phone"`
	Location  string      `json:"location"`
	Favorites []string    `json:"favorites"` // destination IDs, insertion order
	Trip      []TripEntry `json:"tripPlanner"`
	CreatedAt time.Time   `json:"createdAt"`
}

// TripEntry is a point-in-time snapshot of a destination, not a live
// reference; later catalog edits do not rewrite planned trips.
type TripEntry struct {
	DestinationID string    `json:"destinationId"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	Location      string    `json:"location"`
	Category      string    `json:"category"`
	Price         string    `json:"price"`
	Rating        float64   `json:"rating"`
	BestTime      string    `json:"bestTime"`
	AddedAt       time.Time `json:"addedAt"`
}

// UserID derives the stable user identifier from the registration email.
// One-way, not cryptographic: unpadded base64 of the email.
func UserID(email string) string {
	return base64.RawStdEncoding.EncodeToString([]byte(email))
}

func (u User) HasFavorite(destinationID string) bool {
	for _, id := range u.Favorites {
		if id == destinationID {
			return true
		}
	}
	return false
}

func (u User) HasTripEntry(destinationID string) bool {
	for _, e := range u.Trip {
		if e.DestinationID == destinationID {
			return true
		}
	}
	return false
}

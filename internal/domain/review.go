package domain

import "time"

const MaxCommentLen = 500

type Review struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	DestinationID string    `json:"destinationId"`
	Rating        int       `json:"rating"`  // 1..5
	Comment       string    `json:"comment"` // non-empty, <= MaxCommentLen
	HelpfulVoters []string  `json:"helpfulVoters"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HelpfulCount is the size of the dedup'd voter set.
func (r Review) HelpfulCount() int { return len(r.HelpfulVoters) }

// MarkedHelpfulBy reports whether userID is in the voter set.
func (r Review) MarkedHelpfulBy(userID string) bool {
	for _, v := range r.HelpfulVoters {
		if v == userID {
			return true
		}
	}
	return false
}

// ReviewView is a review with its author resolved for display.
type ReviewView struct {
	Review
	AuthorName   string `json:"authorName"`
	AuthorAvatar string `json:"authorAvatar,omitempty"`
}

// UserReviewView is a review with its destination resolved for the
// "my reviews" listing.
type UserReviewView struct {
	Review
	DestinationName     string `json:"destinationName"`
	DestinationLocation string `json:"destinationLocation"`
	DestinationImage    string `json:"destinationImage,omitempty"`
}

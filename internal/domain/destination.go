package domain

import "time"

// Destination categories and price tiers are closed sets; anything else is
// rejected at the mutation boundary.
var (
	Categories = []string{"adventure", "historical", "food", "relaxation"}
	PriceTiers = []string{"Free", "$", "$$", "$$$"}
)

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`      // derived from the review set
	ReviewCount int       `json:"reviewCount"` // derived from the review set
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Coords      Coords    `json:"coordinates"`
	Price       string    `json:"price"`
	BestTime    string    `json:"bestTime"`
	Weather     string    `json:"weather"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidPrice(p string) bool {
	for _, v := range PriceTiers {
		if v == p {
			return true
		}
	}
	return false
}

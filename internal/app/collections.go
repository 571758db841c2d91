package app

import (
	"context"
	"time"

	"local_travel/internal/domain"
)

// CollectionService owns each user's favorites and trip-planner lists.
// Membership is always by destination ID, never by record identity.
type CollectionService struct {
	users        domain.UserRepository
	destinations domain.DestinationRepository
	reviews      domain.ReviewRepository
}

func NewCollectionService(u domain.UserRepository, d domain.DestinationRepository, r domain.ReviewRepository) *CollectionService {
	return &CollectionService{users: u, destinations: d, reviews: r}
}

// AddFavorite appends the destination to the user's favorites unless it is
// already present; the first insertion keeps its position.
func (s *CollectionService) AddFavorite(ctx context.Context, userID, destinationID string) ([]domain.Destination, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.destinations.Get(ctx, destinationID); err != nil {
		return nil, err
	}
	if !u.HasFavorite(destinationID) {
		u.Favorites = append(u.Favorites, destinationID)
		if err := s.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}
	return s.materializeFavorites(ctx, u)
}

func (s *CollectionService) RemoveFavorite(ctx context.Context, userID, destinationID string) ([]domain.Destination, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.HasFavorite(destinationID) {
		kept := u.Favorites[:0]
		for _, id := range u.Favorites {
			if id != destinationID {
				kept = append(kept, id)
			}
		}
		u.Favorites = kept
		if err := s.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}
	return s.materializeFavorites(ctx, u)
}

// AddToTrip stores a snapshot of the destination, not a live reference, so
// later catalog edits leave planned trips untouched. Idempotent on the
// destination ID.
func (s *CollectionService) AddToTrip(ctx context.Context, userID, destinationID string) ([]domain.TripEntry, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.HasTripEntry(destinationID) {
		return u.Trip, nil
	}
	d, err := s.destinations.Get(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	bestTime := d.BestTime
	if bestTime == "" {
		bestTime = "All year"
	}
	u.Trip = append(u.Trip, domain.TripEntry{
		DestinationID: d.ID,
		Name:          d.Name,
		Image:         d.Image,
		Location:      d.Location,
		Category:      d.Category,
		Price:         d.Price,
		Rating:        d.Rating,
		BestTime:      bestTime,
		AddedAt:       time.Now().UTC(),
	})
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u.Trip, nil
}

func (s *CollectionService) RemoveFromTrip(ctx context.Context, userID, destinationID string) ([]domain.TripEntry, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.HasTripEntry(destinationID) {
		kept := u.Trip[:0]
		for _, e := range u.Trip {
			if e.DestinationID != destinationID {
				kept = append(kept, e)
			}
		}
		u.Trip = kept
		if err := s.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}
	return u.Trip, nil
}

type ProfileView struct {
	User         domain.User          `json:"user"`
	Favorites    []domain.Destination `json:"favorites"`
	Trip         []domain.TripEntry   `json:"tripPlanner"`
	ReviewCount  int                  `json:"reviewsCount"`
	HelpfulVotes int                  `json:"helpfulVotes"`
}

// Profile materializes the user's collections and review stats.
func (s *CollectionService) Profile(ctx context.Context, userID string) (ProfileView, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return ProfileView{}, err
	}
	favs, err := s.materializeFavorites(ctx, u)
	if err != nil {
		return ProfileView{}, err
	}
	rs, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return ProfileView{}, err
	}
	votes := 0
	for _, rv := range rs {
		votes += rv.HelpfulCount()
	}
	return ProfileView{
		User:         u,
		Favorites:    favs,
		Trip:         u.Trip,
		ReviewCount:  len(rs),
		HelpfulVotes: votes,
	}, nil
}

// materializeFavorites resolves favorite IDs to destination records,
// dropping references to destinations removed by a reseed.
func (s *CollectionService) materializeFavorites(ctx context.Context, u domain.User) ([]domain.Destination, error) {
	out := make([]domain.Destination, 0, len(u.Favorites))
	for _, id := range u.Favorites {
		d, err := s.destinations.Get(ctx, id)
		if err == domain.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"local_travel/internal/adapters/observability"
	"local_travel/internal/domain"
)

type ReviewService struct {
	reviews      domain.ReviewRepository
	destinations domain.DestinationRepository
	users        domain.UserRepository
	cache        domain.Cache
}

func NewReviewService(r domain.ReviewRepository, d domain.DestinationRepository, u domain.UserRepository, cache domain.Cache) *ReviewService {
	return &ReviewService{reviews: r, destinations: d, users: u, cache: cache}
}

func validateReviewInput(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return domain.Invalid("rating must be between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return domain.Invalid("comment must not be empty")
	}
	if utf8.RuneCountInString(comment) > domain.MaxCommentLen {
		return domain.Invalid(fmt.Sprintf("comment must be at most %d characters", domain.MaxCommentLen))
	}
	return nil
}

func (s *ReviewService) Create(ctx context.Context, userID, destinationID string, rating int, comment string) (domain.ReviewView, error) {
	if err := validateReviewInput(rating, comment); err != nil {
		return domain.ReviewView{}, err
	}
	if _, err := s.destinations.Get(ctx, destinationID); err != nil {
		return domain.ReviewView{}, err
	}
	if _, err := s.reviews.FindByUserAndDestination(ctx, userID, destinationID); err == nil {
		return domain.ReviewView{}, domain.ErrDuplicateReview
	} else if err != domain.ErrNotFound {
		return domain.ReviewView{}, err
	}

	now := time.Now().UTC()
	rv := domain.Review{
		ID:            uuid.NewString(),
		UserID:        userID,
		DestinationID: destinationID,
		Rating:        rating,
		Comment:       comment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return domain.ReviewView{}, err
	}
	// A failed recompute means the mutation is not durably complete.
	if err := s.recompute(ctx, destinationID); err != nil {
		return domain.ReviewView{}, err
	}
	s.invalidate(ctx, destinationID)
	return s.resolveAuthor(ctx, rv), nil
}

func (s *ReviewService) Update(ctx context.Context, reviewID, requesterID string, rating int, comment string) (domain.ReviewView, error) {
	rv, err := s.reviews.GetOwned(ctx, reviewID, requesterID)
	if err != nil {
		return domain.ReviewView{}, err
	}
	if err := validateReviewInput(rating, comment); err != nil {
		return domain.ReviewView{}, err
	}
	rv.Rating = rating
	rv.Comment = comment
	rv.UpdatedAt = time.Now().UTC()
	if err := s.reviews.Update(ctx, rv); err != nil {
		return domain.ReviewView{}, err
	}
	if err := s.recompute(ctx, rv.DestinationID); err != nil {
		return domain.ReviewView{}, err
	}
	s.invalidate(ctx, rv.DestinationID)
	return s.resolveAuthor(ctx, rv), nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID, requesterID string) error {
	rv, err := s.reviews.GetOwned(ctx, reviewID, requesterID)
	if err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	if err := s.recompute(ctx, rv.DestinationID); err != nil {
		return err
	}
	s.invalidate(ctx, rv.DestinationID)
	return nil
}

func (s *ReviewService) ListByDestination(ctx context.Context, destinationID string) ([]domain.ReviewView, error) {
	rs, err := s.reviews.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ReviewView, 0, len(rs))
	for _, rv := range rs {
		out = append(out, s.resolveAuthor(ctx, rv))
	}
	return out, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]domain.UserReviewView, error) {
	rs, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserReviewView, 0, len(rs))
	for _, rv := range rs {
		v := domain.UserReviewView{Review: rv}
		if d, err := s.destinations.Get(ctx, rv.DestinationID); err == nil {
			v.DestinationName = d.Name
			v.DestinationLocation = d.Location
			v.DestinationImage = d.Image
		}
		out = append(out, v)
	}
	return out, nil
}

// ToggleHelpful flips userID's membership in the review's helpful set.
// Any authenticated user may vote, the author included.
func (s *ReviewService) ToggleHelpful(ctx context.Context, reviewID, userID string) (count int, marked bool, err error) {
	rv, err := s.reviews.Get(ctx, reviewID)
	if err != nil {
		return 0, false, err
	}
	if rv.MarkedHelpfulBy(userID) {
		kept := rv.HelpfulVoters[:0]
		for _, v := range rv.HelpfulVoters {
			if v != userID {
				kept = append(kept, v)
			}
		}
		rv.HelpfulVoters = kept
		marked = false
	} else {
		rv.HelpfulVoters = append(rv.HelpfulVoters, userID)
		marked = true
	}
	if err := s.reviews.Update(ctx, rv); err != nil {
		return 0, false, err
	}
	_ = s.cacheDel(ctx, reviewsKey(rv.DestinationID))
	return rv.HelpfulCount(), marked, nil
}

// recompute rewrites the destination's derived rating and review count from
// its full review set. Read-modify-write: concurrent writers may briefly
// recompute from a stale set and the last write wins.
func (s *ReviewService) recompute(ctx context.Context, destinationID string) error {
	rs, err := s.reviews.ListByDestination(ctx, destinationID)
	if err != nil {
		return err
	}
	rating := 0.0
	if len(rs) > 0 {
		sum := 0
		for _, rv := range rs {
			sum += rv.Rating
		}
		rating = round1(float64(sum) / float64(len(rs)))
	}
	if err := s.destinations.UpdateRating(ctx, destinationID, rating, len(rs)); err != nil {
		return fmt.Errorf("update rating for %s: %w", destinationID, err)
	}
	observability.ObserveRecompute()
	return nil
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }

// invalidate drops the cache entries a review mutation makes stale: the
// destination itself, its review list, and the unfiltered catalog listing.
func (s *ReviewService) invalidate(ctx context.Context, destinationID string) {
	_ = s.cacheDel(ctx, destKey(destinationID))
	_ = s.cacheDel(ctx, reviewsKey(destinationID))
	_ = s.cacheDel(ctx, listKey(domain.DestinationQuery{}))
}

func (s *ReviewService) cacheDel(ctx context.Context, key string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, key)
}

func (s *ReviewService) resolveAuthor(ctx context.Context, rv domain.Review) domain.ReviewView {
	v := domain.ReviewView{Review: rv, AuthorName: "Anonymous"}
	if u, err := s.users.Get(ctx, rv.UserID); err == nil {
		v.AuthorName = u.Name
		v.AuthorAvatar = u.Avatar
	}
	return v
}

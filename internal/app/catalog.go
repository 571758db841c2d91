package app

import (
	"context"
	"fmt"
	"time"

	"local_travel/internal/domain"
)

// Cache keys shared by the catalog reads and the review-side invalidation.
func destKey(id string) string               { return "dest:" + id }
func reviewsKey(destinationID string) string { return "reviews:" + destinationID }
func listKey(q domain.DestinationQuery) string {
	return fmt.Sprintf("dests:%s:%s", q.Category, q.Search)
}

type CatalogService struct {
	destinations domain.DestinationRepository
	reviews      domain.ReviewRepository
	users        domain.UserRepository
	cache        domain.Cache
	cacheTTL     time.Duration
}

func NewCatalogService(d domain.DestinationRepository, r domain.ReviewRepository, u domain.UserRepository, c domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{destinations: d, reviews: r, users: u, cache: c, cacheTTL: ttl}
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Destination, error) {
	key := destKey(id)
	var d domain.Destination
	if ok, _ := s.cache.Get(ctx, key, &d); ok {
		return d, nil
	}
	d, err := s.destinations.Get(ctx, id)
	if err != nil {
		return domain.Destination{}, err
	}
	_ = s.cache.Set(ctx, key, d, int(s.cacheTTL.Seconds()))
	return d, nil
}

func (s *CatalogService) List(ctx context.Context, q domain.DestinationQuery) ([]domain.Destination, error) {
	key := listKey(q)
	var out []domain.Destination
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	ds, err := s.destinations.List(ctx, q)
	if err != nil {
		return nil, err
	}
	// copy before caching so callers can't mutate the cached value
	cp := make([]domain.Destination, len(ds))
	copy(cp, ds)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return ds, nil
}

// Seed replaces the whole catalog with the given destinations and drops the
// unfiltered listing cache. Existing reviews keep their records; derived
// stats restart from the seeded values.
func (s *CatalogService) Seed(ctx context.Context, ds []domain.Destination) error {
	now := time.Now().UTC()
	seeded := make([]domain.Destination, len(ds))
	for i, d := range ds {
		d.CreatedAt = now
		d.UpdatedAt = now
		seeded[i] = d
	}
	if err := s.destinations.ReplaceAll(ctx, seeded); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, listKey(domain.DestinationQuery{}))
	for _, d := range seeded {
		_ = s.cache.Del(ctx, destKey(d.ID))
		_ = s.cache.Del(ctx, reviewsKey(d.ID))
	}
	return nil
}

type Stats struct {
	TotalDestinations int                 `json:"totalDestinations"`
	TotalReviews      int                 `json:"totalReviews"`
	AverageRating     float64             `json:"averageRating"`
	CategoryCounts    map[string]int      `json:"categoryCounts"`
	RecentReviews     []domain.ReviewView `json:"recentReviews"`
}

// Stats aggregates the dashboard numbers. The overall average weights each
// destination's derived rating by its review count.
func (s *CatalogService) Stats(ctx context.Context) (Stats, error) {
	ds, err := s.destinations.List(ctx, domain.DestinationQuery{})
	if err != nil {
		return Stats{}, err
	}
	total, err := s.reviews.CountAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		TotalDestinations: len(ds),
		TotalReviews:      total,
		CategoryCounts:    map[string]int{},
	}
	weighted, n := 0.0, 0
	for _, d := range ds {
		st.CategoryCounts[d.Category]++
		if d.ReviewCount > 0 {
			weighted += d.Rating * float64(d.ReviewCount)
			n += d.ReviewCount
		}
	}
	if n > 0 {
		st.AverageRating = round1(weighted / float64(n))
	}

	recent, err := s.reviews.ListRecent(ctx, 3)
	if err != nil {
		return Stats{}, err
	}
	st.RecentReviews = make([]domain.ReviewView, 0, len(recent))
	for _, rv := range recent {
		v := domain.ReviewView{Review: rv, AuthorName: "Anonymous"}
		if u, err := s.users.Get(ctx, rv.UserID); err == nil {
			v.AuthorName = u.Name
			v.AuthorAvatar = u.Avatar
		}
		st.RecentReviews = append(st.RecentReviews, v)
	}
	return st, nil
}

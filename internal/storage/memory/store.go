// Package memory is an in-memory implementation of the repository ports.
// It carries the same CRUD contract as the MySQL store, so the storage
// medium is swappable behind the domain interfaces; unit tests run on it.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"local_travel/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	destinations map[string]domain.Destination
	reviews      map[string]domain.Review
	users        map[string]domain.User
	emails       map[string]string // email -> user ID
}

func New() *Store {
	return &Store{
		destinations: map[string]domain.Destination{},
		reviews:      map[string]domain.Review{},
		users:        map[string]domain.User{},
		emails:       map[string]string{},
	}
}

func (s *Store) Destinations() *DestinationRepo { return &DestinationRepo{s: s} }
func (s *Store) Reviews() *ReviewRepo           { return &ReviewRepo{s: s} }
func (s *Store) Users() *UserRepo               { return &UserRepo{s: s} }

// ---- DestinationRepository ----

type DestinationRepo struct{ s *Store }

func (r *DestinationRepo) Put(ctx context.Context, d domain.Destination) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.destinations[d.ID] = d
	return nil
}

func (r *DestinationRepo) Get(ctx context.Context, id string) (domain.Destination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.destinations[id]
	if !ok {
		return domain.Destination{}, domain.ErrNotFound
	}
	return d, nil
}

func (r *DestinationRepo) List(ctx context.Context, q domain.DestinationQuery) ([]domain.Destination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Destination, 0, len(r.s.destinations))
	needle := strings.ToLower(q.Search)
	for _, d := range r.s.destinations {
		if q.Category != "" && q.Category != "all" && d.Category != q.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(d.Name), needle) &&
			!strings.Contains(strings.ToLower(d.Description), needle) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *DestinationRepo) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.destinations[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Rating = rating
	d.ReviewCount = count
	d.UpdatedAt = time.Now().UTC()
	r.s.destinations[id] = d
	return nil
}

func (r *DestinationRepo) ReplaceAll(ctx context.Context, ds []domain.Destination) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.destinations = make(map[string]domain.Destination, len(ds))
	for _, d := range ds {
		r.s.destinations[d.ID] = d
	}
	return nil
}

func (r *DestinationRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.destinations), nil
}

// ---- ReviewRepository ----

type ReviewRepo struct{ s *Store }

func (r *ReviewRepo) Create(ctx context.Context, rv domain.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, have := range r.s.reviews {
		if have.UserID == rv.UserID && have.DestinationID == rv.DestinationID {
			return domain.ErrDuplicateReview
		}
	}
	r.s.reviews[rv.ID] = copyReview(rv)
	return nil
}

func (r *ReviewRepo) Update(ctx context.Context, rv domain.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[rv.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.reviews[rv.ID] = copyReview(rv)
	return nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.reviews, id)
	return nil
}

func (r *ReviewRepo) Get(ctx context.Context, id string) (domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rv, ok := r.s.reviews[id]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return copyReview(rv), nil
}

func (r *ReviewRepo) GetOwned(ctx context.Context, id, userID string) (domain.Review, error) {
	rv, err := r.Get(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	if rv.UserID != userID {
		// indistinguishable from a missing review on purpose
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, nil
}

func (r *ReviewRepo) ListByDestination(ctx context.Context, destinationID string) ([]domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Review
	for _, rv := range r.s.reviews {
		if rv.DestinationID == destinationID {
			out = append(out, copyReview(rv))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *ReviewRepo) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Review
	for _, rv := range r.s.reviews {
		if rv.UserID == userID {
			out = append(out, copyReview(rv))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *ReviewRepo) FindByUserAndDestination(ctx context.Context, userID, destinationID string) (domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rv := range r.s.reviews {
		if rv.UserID == userID && rv.DestinationID == destinationID {
			return copyReview(rv), nil
		}
	}
	return domain.Review{}, domain.ErrNotFound
}

func (r *ReviewRepo) CountAll(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.reviews), nil
}

func (r *ReviewRepo) ListRecent(ctx context.Context, limit int) ([]domain.Review, error) {
	r.s.mu.RLock()
	var all []domain.Review
	for _, rv := range r.s.reviews {
		all = append(all, copyReview(rv))
	}
	r.s.mu.RUnlock()
	sortNewestFirst(all)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// ---- UserRepository ----

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, taken := r.s.emails[u.Email]; taken {
		return domain.ErrEmailTaken
	}
	r.s.users[u.ID] = copyUser(u)
	r.s.emails[u.Email] = u.ID
	return nil
}

func (r *UserRepo) Update(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.users[u.ID] = copyUser(u)
	return nil
}

func (r *UserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.emails[email]
	if !ok {
		return domain.User{}, domain.ErrUnknownEmail
	}
	return copyUser(r.s.users[id]), nil
}

// ---- helpers ----

func sortNewestFirst(rs []domain.Review) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID > rs[j].ID
		}
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
}

func copyReview(r domain.Review) domain.Review {
	r.HelpfulVoters = append([]string(nil), r.HelpfulVoters...)
	return r
}

func copyUser(u domain.User) domain.User {
	u.Favorites = append([]string(nil), u.Favorites...)
	u.Trip = append([]domain.TripEntry(nil), u.Trip...)
	return u
}

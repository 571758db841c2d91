package app_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"local_travel/internal/app"
	"local_travel/internal/domain"
	"local_travel/internal/storage/memory"
)

// ---- fixtures ----

func seedDestination(t *testing.T, store *memory.Store, id string) domain.Destination {
	t.Helper()
	d := domain.Destination{
		ID:       id,
		Name:     "Dest " + id,
		Category: "adventure",
		Image:    "https://example.com/" + id + ".jpg",
		Location: "Somewhere",
		Price:    "$",
		BestTime: "Morning",
		Weather:  "Sunny",
	}
	if err := store.Destinations().Put(context.Background(), d); err != nil {
		t.Fatalf("seed destination: %v", err)
	}
	return d
}

func seedUser(t *testing.T, store *memory.Store, name, email string) domain.User {
	t.Helper()
	u := domain.User{
		ID:        domain.UserID(email),
		Name:      name,
		Email:     email,
		Password:  "secret1",
		Favorites: []string{},
		Trip:      []domain.TripEntry{},
		CreatedAt: time.Now().UTC(),
	}
	if err := store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func newReviewService(store *memory.Store) *app.ReviewService {
	return app.NewReviewService(store.Reviews(), store.Destinations(), store.Users(), nil)
}

func mustRating(t *testing.T, store *memory.Store, id string) (float64, int) {
	t.Helper()
	d, err := store.Destinations().Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get destination: %v", err)
	}
	return d.Rating, d.ReviewCount
}

// ---- tests ----

func TestCreateReview_FirstReviewSetsRating(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	u := seedUser(t, store, "Ana", "ana@example.com")
	svc := newReviewService(store)

	view, err := svc.Create(context.Background(), u.ID, d.ID, 5, "Wonderful place")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.AuthorName != "Ana" {
		t.Fatalf("expected resolved author Ana, got %q", view.AuthorName)
	}

	rating, count := mustRating(t, store, d.ID)
	if rating != 5.0 || count != 1 {
		t.Fatalf("expected rating=5.0 count=1, got %v/%d", rating, count)
	}
}

func TestDeleteReview_RecomputesAndResets(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	a := seedUser(t, store, "Ana", "ana@example.com")
	b := seedUser(t, store, "Ben", "ben@example.com")
	svc := newReviewService(store)
	ctx := context.Background()

	four, err := svc.Create(ctx, a.ID, d.ID, 4, "Good")
	if err != nil {
		t.Fatalf("create 4: %v", err)
	}
	if _, err := svc.Create(ctx, b.ID, d.ID, 5, "Great"); err != nil {
		t.Fatalf("create 5: %v", err)
	}
	if rating, count := mustRating(t, store, d.ID); rating != 4.5 || count != 2 {
		t.Fatalf("expected 4.5/2, got %v/%d", rating, count)
	}

	if err := svc.Delete(ctx, four.ID, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rating, count := mustRating(t, store, d.ID); rating != 5.0 || count != 1 {
		t.Fatalf("expected 5.0/1 after delete, got %v/%d", rating, count)
	}

	// removing the last review resets the derived stats to zero
	rs, _ := store.Reviews().ListByDestination(ctx, d.ID)
	if err := svc.Delete(ctx, rs[0].ID, b.ID); err != nil {
		t.Fatalf("delete last: %v", err)
	}
	if rating, count := mustRating(t, store, d.ID); rating != 0 || count != 0 {
		t.Fatalf("expected 0/0 after last delete, got %v/%d", rating, count)
	}
}

func TestCreateReview_DuplicateRejected(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	u := seedUser(t, store, "Ana", "ana@example.com")
	svc := newReviewService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, u.ID, d.ID, 4, "First"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, u.ID, d.ID, 5, "Second")
	if !errors.Is(err, domain.ErrDuplicateReview) {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}
}

func TestCreateReview_Validation(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	u := seedUser(t, store, "Ana", "ana@example.com")
	svc := newReviewService(store)
	ctx := context.Background()

	cases := []struct {
		name    string
		rating  int
		comment string
	}{
		{"rating too low", 0, "fine"},
		{"rating too high", 6, "fine"},
		{"empty comment", 3, "   "},
		{"comment too long", 3, strings.Repeat("a", domain.MaxCommentLen+1)},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, u.ID, d.ID, tc.rating, tc.comment); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
	// a comment of exactly the limit passes
	if _, err := svc.Create(ctx, u.ID, d.ID, 3, strings.Repeat("a", domain.MaxCommentLen)); err != nil {
		t.Fatalf("max-length comment should pass: %v", err)
	}

	// the limit counts characters, not bytes: 400 Devanagari runes are
	// 1200 bytes and still within bounds
	u2 := seedUser(t, store, "Dev", "dev@example.com")
	if _, err := svc.Create(ctx, u2.ID, d.ID, 3, strings.Repeat("क", 400)); err != nil {
		t.Fatalf("multibyte comment within the limit should pass: %v", err)
	}
}

func TestUpdateReview_OwnershipHidesExistence(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	owner := seedUser(t, store, "Ana", "ana@example.com")
	other := seedUser(t, store, "Ben", "ben@example.com")
	svc := newReviewService(store)
	ctx := context.Background()

	view, err := svc.Create(ctx, owner.ID, d.ID, 3, "Okay")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, view.ID, other.ID, 5, "hijack"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, view.ID, other.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign delete: expected ErrNotFound, got %v", err)
	}

	// the owner can still update, and the aggregate follows
	if _, err := svc.Update(ctx, view.ID, owner.ID, 5, "Changed my mind"); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if rating, count := mustRating(t, store, d.ID); rating != 5.0 || count != 1 {
		t.Fatalf("expected 5.0/1 after update, got %v/%d", rating, count)
	}
}

func TestToggleHelpful_RoundTripAndSelfVote(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	author := seedUser(t, store, "Ana", "ana@example.com")
	svc := newReviewService(store)
	ctx := context.Background()

	view, err := svc.Create(ctx, author.ID, d.ID, 4, "Nice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// the author may vote on their own review
	count, marked, err := svc.ToggleHelpful(ctx, view.ID, author.ID)
	if err != nil || count != 1 || !marked {
		t.Fatalf("first toggle: count=%d marked=%v err=%v", count, marked, err)
	}
	count, marked, err = svc.ToggleHelpful(ctx, view.ID, author.ID)
	if err != nil || count != 0 || marked {
		t.Fatalf("second toggle should round-trip: count=%d marked=%v err=%v", count, marked, err)
	}

	if _, _, err := svc.ToggleHelpful(ctx, "missing", author.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing review, got %v", err)
	}
}

func TestListByDestination_NewestFirstWithAuthors(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	svc := newReviewService(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		u := seedUser(t, store, fmt.Sprintf("User%d", i), fmt.Sprintf("u%d@example.com", i))
		rv := domain.Review{
			ID:            fmt.Sprintf("r%d", i),
			UserID:        u.ID,
			DestinationID: d.ID,
			Rating:        3,
			Comment:       "c",
			CreatedAt:     time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
		}
		if err := store.Reviews().Create(ctx, rv); err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}

	views, err := svc.ListByDestination(ctx, d.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(views))
	}
	if views[0].ID != "r2" || views[2].ID != "r0" {
		t.Fatalf("expected newest first, got %s..%s", views[0].ID, views[2].ID)
	}
	if views[0].AuthorName != "User2" {
		t.Fatalf("expected resolved author User2, got %q", views[0].AuthorName)
	}
}

func TestListByUser_ResolvesDestination(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	u := seedUser(t, store, "Ana", "ana@example.com")
	svc := newReviewService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, u.ID, d.ID, 4, "Nice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	views, err := svc.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 || views[0].DestinationName != d.Name || views[0].DestinationLocation != d.Location {
		t.Fatalf("unexpected views: %+v", views)
	}
}

// failingDestinations makes UpdateRating fail to prove a broken recompute
// blocks the triggering mutation.
type failingDestinations struct {
	*memory.DestinationRepo
	fail bool
}

func (f *failingDestinations) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	if f.fail {
		return errors.New("storage unreachable")
	}
	return f.DestinationRepo.UpdateRating(ctx, id, rating, count)
}

func TestCreateReview_RecomputeFailureSurfaces(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	u := seedUser(t, store, "Ana", "ana@example.com")
	dests := &failingDestinations{DestinationRepo: store.Destinations(), fail: true}
	svc := app.NewReviewService(store.Reviews(), dests, store.Users(), nil)

	if _, err := svc.Create(context.Background(), u.ID, d.ID, 5, "Great"); err == nil {
		t.Fatal("expected error when rating write fails")
	}
}

// Concurrent creates race on the read-then-write recompute; last write wins.
// One more mutation after the dust settles must leave the derived stats
// consistent with the full review set.
func TestRecompute_ConcurrentCreatesSettle(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	svc := newReviewService(store)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		u := seedUser(t, store, fmt.Sprintf("User%d", i), fmt.Sprintf("w%d@example.com", i))
		wg.Add(1)
		go func(userID string, rating int) {
			defer wg.Done()
			if _, err := svc.Create(ctx, userID, d.ID, rating, "concurrent"); err != nil {
				t.Errorf("create: %v", err)
			}
		}(u.ID, i%5+1)
	}
	wg.Wait()

	late := seedUser(t, store, "Late", "late@example.com")
	if _, err := svc.Create(ctx, late.ID, d.ID, 5, "settling write"); err != nil {
		t.Fatalf("settling create: %v", err)
	}

	rs, _ := store.Reviews().ListByDestination(ctx, d.ID)
	sum := 0
	for _, rv := range rs {
		sum += rv.Rating
	}
	wantCount := writers + 1
	wantRating := float64(int(float64(sum)/float64(wantCount)*10+0.5)) / 10

	rating, count := mustRating(t, store, d.ID)
	if count != wantCount {
		t.Fatalf("expected count %d after settle, got %d", wantCount, count)
	}
	if rating != wantRating {
		t.Fatalf("expected rating %v after settle, got %v", wantRating, rating)
	}
}

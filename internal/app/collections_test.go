package app_test

import (
	"context"
	"errors"
	"testing"

	"local_travel/internal/app"
	"local_travel/internal/domain"
	"local_travel/internal/storage/memory"
)

func newCollectionService(store *memory.Store) *app.CollectionService {
	return app.NewCollectionService(store.Users(), store.Destinations(), store.Reviews())
}

func TestFavorites_IdempotentAndOrdered(t *testing.T) {
	store := memory.New()
	a := seedDestination(t, store, "a")
	b := seedDestination(t, store, "b")
	u := seedUser(t, store, "Ana", "ana@example.com")
	svc := newCollectionService(store)
	ctx := context.Background()

	if _, err := svc.AddFavorite(ctx, u.ID, a.ID); err != nil {
		t.Fatalf("add a: %v", err)
	}
	favs, err := svc.AddFavorite(ctx, u.ID, b.ID)
	if err != nil {
		t.Fatalf("add b: %v", err)
	}
	if len(favs) != 2 || favs[0].ID != "a" || favs[1].ID != "b" {
		t.Fatalf("expected [a b], got %+v", favs)
	}

	// re-adding keeps length and the original position
	favs, err = svc.AddFavorite(ctx, u.ID, a.ID)
	if err != nil {
		t.Fatalf("re-add a: %v", err)
	}
	if len(favs) != 2 || favs[0].ID != "a" {
		t.Fatalf("re-add must be a no-op, got %+v", favs)
	}

	favs, err = svc.RemoveFavorite(ctx, u.ID, a.ID)
	if err != nil {
		t.Fatalf("remove a: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != "b" {
		t.Fatalf("expected [b], got %+v", favs)
	}

	// removing something absent is a no-op, not an error
	favs, err = svc.RemoveFavorite(ctx, u.ID, "missing")
	if err != nil || len(favs) != 1 {
		t.Fatalf("absent remove: favs=%+v err=%v", favs, err)
	}
}

func TestAddFavorite_UnknownDestination(t *testing.T) {
	store := memory.New()
	u := seedUser(t, store, "Ana", "ana@example.com")
	svc := newCollectionService(store)

	if _, err := svc.AddFavorite(context.Background(), u.ID, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTrip_SnapshotSemantics(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	d.BestTime = "" // exercise the fallback
	if err := store.Destinations().Put(context.Background(), d); err != nil {
		t.Fatalf("put: %v", err)
	}
	u := seedUser(t, store, "Ana", "ana@example.com")
	svc := newCollectionService(store)
	ctx := context.Background()

	trip, err := svc.AddToTrip(ctx, u.ID, d.ID)
	if err != nil {
		t.Fatalf("add to trip: %v", err)
	}
	if len(trip) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(trip))
	}
	e := trip[0]
	if e.BestTime != "All year" {
		t.Fatalf("expected BestTime fallback, got %q", e.BestTime)
	}
	if e.AddedAt.IsZero() {
		t.Fatal("AddedAt must be stamped")
	}
	if e.Name != d.Name || e.Location != d.Location {
		t.Fatalf("snapshot mismatch: %+v", e)
	}

	// a later catalog edit must not leak into the stored snapshot
	d.Name = "Renamed"
	if err := store.Destinations().Put(ctx, d); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, err := store.Users().Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Trip[0].Name != "Dest x" {
		t.Fatalf("snapshot changed after catalog edit: %q", got.Trip[0].Name)
	}

	// idempotent on the destination ID
	trip, err = svc.AddToTrip(ctx, u.ID, d.ID)
	if err != nil || len(trip) != 1 {
		t.Fatalf("re-add: trip=%+v err=%v", trip, err)
	}

	trip, err = svc.RemoveFromTrip(ctx, u.ID, d.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(trip) != 0 {
		t.Fatalf("expected empty trip, got %+v", trip)
	}
}

func TestProfile_MaterializesCollectionsAndStats(t *testing.T) {
	store := memory.New()
	d := seedDestination(t, store, "x")
	gone := seedDestination(t, store, "gone")
	u := seedUser(t, store, "Ana", "ana@example.com")
	voter := seedUser(t, store, "Ben", "ben@example.com")
	colls := newCollectionService(store)
	reviews := newReviewService(store)
	ctx := context.Background()

	if _, err := colls.AddFavorite(ctx, u.ID, d.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if _, err := colls.AddFavorite(ctx, u.ID, gone.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	view, err := reviews.Create(ctx, u.ID, d.ID, 5, "Lovely")
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if _, _, err := reviews.ToggleHelpful(ctx, view.ID, voter.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// a reseed can drop a favorited destination; the profile skips it
	if err := store.Destinations().ReplaceAll(ctx, []domain.Destination{d}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	p, err := colls.Profile(ctx, u.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if len(p.Favorites) != 1 || p.Favorites[0].ID != d.ID {
		t.Fatalf("expected one surviving favorite, got %+v", p.Favorites)
	}
	if p.ReviewCount != 1 || p.HelpfulVotes != 1 {
		t.Fatalf("expected 1 review / 1 vote, got %d/%d", p.ReviewCount, p.HelpfulVotes)
	}
	if p.User.Email != u.Email {
		t.Fatalf("unexpected user in profile: %+v", p.User)
	}
}

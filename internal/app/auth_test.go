package app_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"local_travel/internal/app"
	"local_travel/internal/domain"
	"local_travel/internal/storage/memory"
)

// fakeSessions is an in-process stand-in for the Redis session store.
type fakeSessions struct{ m map[string]string }

func newFakeSessions() *fakeSessions { return &fakeSessions{m: map[string]string{}} }

func (f *fakeSessions) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	f.m[token] = userID
	return nil
}

func (f *fakeSessions) Resolve(ctx context.Context, token string) (string, error) {
	id, ok := f.m[token]
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}

func (f *fakeSessions) Delete(ctx context.Context, token string) error {
	delete(f.m, token)
	return nil
}

type fakeNotes struct{ m map[string][]domain.Notification }

func newFakeNotes() *fakeNotes { return &fakeNotes{m: map[string][]domain.Notification{}} }

func (f *fakeNotes) Push(ctx context.Context, userID string, n domain.Notification) error {
	f.m[userID] = append([]domain.Notification{n}, f.m[userID]...)
	return nil
}

func (f *fakeNotes) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return f.m[userID], nil
}

func (f *fakeNotes) MarkRead(ctx context.Context, userID, notificationID string) error {
	for i, n := range f.m[userID] {
		if n.ID == notificationID {
			f.m[userID][i].Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNotes) Clear(ctx context.Context, userID string) error {
	delete(f.m, userID)
	return nil
}

func newAuthService(store *memory.Store) (*app.AuthService, *fakeSessions, *fakeNotes) {
	sessions := newFakeSessions()
	notes := newFakeNotes()
	return app.NewAuthService(store.Users(), sessions, notes, time.Hour), sessions, notes
}

func TestRegister_PasswordLength(t *testing.T) {
	svc, _, _ := newAuthService(memory.New())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "abc"); !domain.IsValidation(err) {
		t.Fatalf("short password: expected validation error, got %v", err)
	}
	sess, err := svc.Register(ctx, "Ana", "ana@example.com", "abcdef")
	if err != nil {
		t.Fatalf("six characters must pass: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("expected a session token")
	}
}

func TestRegister_DefaultsAndNotification(t *testing.T) {
	store := memory.New()
	svc, sessions, notes := newAuthService(store)

	sess, err := svc.Register(context.Background(), "  Ana  ", "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	u := sess.User
	if u.Name != "Ana" {
		t.Fatalf("name must be trimmed, got %q", u.Name)
	}
	if u.ID != domain.UserID("ana@example.com") {
		t.Fatalf("unexpected user ID %q", u.ID)
	}
	if decoded, err := base64.RawStdEncoding.DecodeString(u.ID); err != nil || string(decoded) != u.Email {
		t.Fatalf("user ID must encode the email without padding: %q", u.ID)
	}
	if strings.Contains(u.ID, "=") {
		t.Fatalf("user ID must not carry padding: %q", u.ID)
	}
	if u.Avatar == "" || u.Bio != "Travel enthusiast exploring local wonders" {
		t.Fatalf("expected profile defaults, got avatar=%q bio=%q", u.Avatar, u.Bio)
	}
	if u.Favorites == nil || u.Trip == nil {
		t.Fatal("collections must start empty, not nil")
	}

	if got, _ := sessions.Resolve(context.Background(), sess.Token); got != u.ID {
		t.Fatalf("token resolves to %q, want %q", got, u.ID)
	}
	ns, _ := notes.List(context.Background(), u.ID)
	if len(ns) != 1 || ns[0].Title != "Welcome to LocalTravel!" {
		t.Fatalf("expected welcome notification, got %+v", ns)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, _, _ := newAuthService(memory.New())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "secret1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "ana@example.com", "secret2"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_CredentialOutcomes(t *testing.T) {
	store := memory.New()
	svc, _, _ := newAuthService(store)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrUnknownEmail) {
		t.Fatalf("unknown email: got %v", err)
	}

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Login(ctx, "ana@example.com", "wrong"); !errors.Is(err, domain.ErrBadCredential) {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, err := svc.Login(ctx, "", "secret1"); !domain.IsValidation(err) {
		t.Fatalf("empty email: expected validation error, got %v", err)
	}

	sess, err := svc.Login(ctx, "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.User.Email != "ana@example.com" || sess.Token == "" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestLogin_ReturnsPersistedCollections(t *testing.T) {
	store := memory.New()
	seedDestination(t, store, "x")
	svc, _, _ := newAuthService(store)
	colls := newCollectionService(store)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ana", "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := colls.AddFavorite(ctx, reg.User.ID, "x"); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if err := svc.Logout(ctx, reg.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	sess, err := svc.Login(ctx, "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if len(sess.User.Favorites) != 1 || sess.User.Favorites[0] != "x" {
		t.Fatalf("favorites must survive logout, got %+v", sess.User.Favorites)
	}
}

func TestLogout_InvalidatesToken(t *testing.T) {
	svc, _, _ := newAuthService(memory.New())
	ctx := context.Background()

	sess, err := svc.Register(ctx, "Ana", "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.CurrentUser(ctx, sess.Token); err != nil {
		t.Fatalf("current user before logout: %v", err)
	}
	if err := svc.Logout(ctx, sess.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.CurrentUser(ctx, sess.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	store := memory.New()
	svc, _, _ := newAuthService(store)
	ctx := context.Background()

	sess, err := svc.Register(ctx, "Ana", "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	bio := "New bio"
	u, err := svc.UpdateProfile(ctx, sess.User.ID, app.ProfileUpdate{Bio: &bio})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Bio != "New bio" || u.Name != "Ana" {
		t.Fatalf("merge broke fields: %+v", u)
	}

	empty := "   "
	if _, err := svc.UpdateProfile(ctx, sess.User.ID, app.ProfileUpdate{Name: &empty}); !domain.IsValidation(err) {
		t.Fatalf("blank name: expected validation error, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	svc, _, _ := newAuthService(memory.New())
	ctx := context.Background()

	if _, err := svc.ResetPassword(ctx, "ghost@example.com"); !errors.Is(err, domain.ErrUnknownEmail) {
		t.Fatalf("unknown email: got %v", err)
	}
	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	msg, err := svc.ResetPassword(ctx, "ana@example.com")
	if err != nil || msg == "" {
		t.Fatalf("expected advisory message, got %q err=%v", msg, err)
	}
}

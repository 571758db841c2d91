package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"local_travel/internal/domain"
)

const defaultAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=100&q=80"

// AuthService drives the Anonymous -> Authenticated -> Anonymous session
// machine. Sessions are opaque tokens resolved server-side so logout takes
// effect immediately.
type AuthService struct {
	users         domain.UserRepository
	sessions      domain.SessionStore
	notifications domain.NotificationStore
	sessionTTL    time.Duration
}

func NewAuthService(u domain.UserRepository, s domain.SessionStore, n domain.NotificationStore, ttl time.Duration) *AuthService {
	return &AuthService{users: u, sessions: s, notifications: n, sessionTTL: ttl}
}

type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return Session{}, domain.Invalid("please fill in all fields")
	}
	if len(password) < 6 {
		return Session{}, domain.Invalid("password must be at least 6 characters")
	}

	u := domain.User{
		ID:        domain.UserID(email),
		Name:      name,
		Email:     email,
		Password:  password,
		Avatar:    defaultAvatar,
		Bio:       "Travel enthusiast exploring local wonders",
		Favorites: []string{},
		Trip:      []domain.TripEntry{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return Session{}, err
	}
	return s.openSession(ctx, u, "Welcome to LocalTravel!", "Start exploring amazing destinations around you")
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, domain.Invalid("please enter both email and password")
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	// demo-grade credential store: plaintext match
	if u.Password != password {
		return Session{}, domain.ErrBadCredential
	}
	return s.openSession(ctx, u, "Welcome back!", "Your favorites and planned trips are ready")
}

// Logout deletes the server-side session; persisted user data stays.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// CurrentUser resolves a bearer token to its user record.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return domain.User{}, err
	}
	return s.users.Get(ctx, userID)
}

// ResolveToken returns just the user ID for a bearer token.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (string, error) {
	return s.sessions.Resolve(ctx, token)
}

type ProfileUpdate struct {
	Name     *string `json:"name"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

// UpdateProfile merges the supplied fields into the user record; absent
// fields keep their current values.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (domain.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return domain.User{}, domain.Invalid("name must not be empty")
		}
		u.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if err := s.users.Update(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// ResetPassword keeps the demo behavior of the reference client: the email
// must be registered, and the caller gets an advisory message back. No mail
// is sent.
func (s *AuthService) ResetPassword(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", domain.Invalid("please provide your email")
	}
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		return "", err
	}
	return "Password reset instructions sent to your email", nil
}

func (s *AuthService) openSession(ctx context.Context, u domain.User, title, message string) (Session, error) {
	token := uuid.NewString()
	if err := s.sessions.Put(ctx, token, u.ID, s.sessionTTL); err != nil {
		return Session{}, err
	}
	// notifications are transient; failing to push one never fails the login
	_ = s.notifications.Push(ctx, u.ID, domain.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	return Session{Token: token, User: u}, nil
}

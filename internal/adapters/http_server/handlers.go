package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"local_travel/internal/app"
	"local_travel/internal/domain"
)

type Handlers struct {
	Auth          *app.AuthService
	Catalog       *app.CatalogService
	Reviews       *app.ReviewService
	Collections   *app.CollectionService
	Notifications *app.NotificationService
	AuthRPS       int
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(RateLimit(h.AuthRPS))
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/auth/reset-password", h.resetPassword)
		})

		r.Get("/destinations", h.listDestinations)
		r.Get("/destinations/{id}", h.getDestination)
		r.Get("/destinations/{id}/reviews", h.listDestinationReviews)
		r.Get("/stats", h.stats)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(h.Auth))
			r.Post("/auth/logout", h.logout)

			// seeding replaces the whole catalog, so it needs a session
			// like every other mutation
			r.Post("/destinations/seed", h.seedDestinations)

			r.Get("/reviews/mine", h.listMyReviews)
			r.Post("/reviews", h.createReview)
			r.Put("/reviews/{id}", h.updateReview)
			r.Delete("/reviews/{id}", h.deleteReview)
			r.Post("/reviews/{id}/helpful", h.toggleHelpful)

			r.Get("/users/me", h.profile)
			r.Put("/users/me", h.updateProfile)
			r.Post("/users/me/favorites/{destinationID}", h.addFavorite)
			r.Delete("/users/me/favorites/{destinationID}", h.removeFavorite)
			r.Post("/users/me/trip-planner/{destinationID}", h.addToTrip)
			r.Delete("/users/me/trip-planner/{destinationID}", h.removeFromTrip)

			r.Get("/notifications", h.listNotifications)
			r.Post("/notifications/{id}/read", h.markNotificationRead)
			r.Delete("/notifications", h.clearNotifications)
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError translates the domain taxonomy into the problem envelope.
// Anything unrecognized is a persistence failure: surfaced, not retried.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", ve.Msg)
	case errors.Is(err, domain.ErrUnauthorized):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "authentication required")
	case errors.Is(err, domain.ErrBadCredential):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "incorrect password")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "resource not found")
	case errors.Is(err, domain.ErrUnknownEmail):
		writeProblem(w, http.StatusNotFound, "Not Found", "email not registered")
	case errors.Is(err, domain.ErrDuplicateReview):
		writeProblem(w, http.StatusConflict, "Conflict", "you have already reviewed this destination")
	case errors.Is(err, domain.ErrEmailTaken):
		writeProblem(w, http.StatusConflict, "Conflict", "email already registered")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "storage failure, please retry")
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return false
	}
	return true
}

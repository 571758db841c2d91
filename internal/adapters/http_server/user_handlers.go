package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"local_travel/internal/app"
)

func (h *Handlers) profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.Collections.Profile(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	var upd app.ProfileUpdate
	if !decode(w, r, &upd) {
		return
	}
	u, err := h.Auth.UpdateProfile(r.Context(), currentUserID(r), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) addFavorite(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Collections.AddFavorite(r.Context(), currentUserID(r), chi.URLParam(r, "destinationID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": favs})
}

func (h *Handlers) removeFavorite(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Collections.RemoveFavorite(r.Context(), currentUserID(r), chi.URLParam(r, "destinationID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": favs})
}

func (h *Handlers) addToTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.Collections.AddToTrip(r.Context(), currentUserID(r), chi.URLParam(r, "destinationID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tripPlanner": trip})
}

func (h *Handlers) removeFromTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.Collections.RemoveFromTrip(r.Context(), currentUserID(r), chi.URLParam(r, "destinationID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tripPlanner": trip})
}

func (h *Handlers) listNotifications(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Notifications.List(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *Handlers) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Notifications.MarkRead(r.Context(), currentUserID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) clearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.Notifications.ClearAll(r.Context(), currentUserID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) listDestinationReviews(w http.ResponseWriter, r *http.Request) {
	views, err := h.Reviews.ListByDestination(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handlers) listMyReviews(w http.ResponseWriter, r *http.Request) {
	views, err := h.Reviews.ListByUser(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

type reviewRequest struct {
	DestinationID string `json:"destinationId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Reviews.Create(r.Context(), currentUserID(r), req.DestinationID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Reviews.Update(r.Context(), chi.URLParam(r, "id"), currentUserID(r), req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.Reviews.Delete(r.Context(), chi.URLParam(r, "id"), currentUserID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}

func (h *Handlers) toggleHelpful(w http.ResponseWriter, r *http.Request) {
	count, marked, err := h.Reviews.ToggleHelpful(r.Context(), chi.URLParam(r, "id"), currentUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"helpful": count, "hasMarkedHelpful": marked})
}

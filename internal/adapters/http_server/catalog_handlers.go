package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"local_travel/internal/domain"
	"local_travel/internal/shared"
)

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	q := domain.DestinationQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	if q.Category != "" && q.Category != "all" && !domain.ValidCategory(q.Category) {
		writeProblem(w, http.StatusBadRequest, "Invalid Category", "category must be one of adventure, historical, food, relaxation")
		return
	}
	ds, err := h.Catalog.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (h *Handlers) getDestination(w http.ResponseWriter, r *http.Request) {
	d, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) seedDestinations(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Seed(r.Context(), shared.SeedDestinations); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sample data seeded successfully"})
}

func (h *Handlers) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Catalog.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

package performance

import "github.com/go-chi/chi/v5"

// Routes returns performance admin routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Ingest)

	return r
}

// TrackRoutes returns the public counter-tracking routes used by ad
// placements. They carry no admin auth.
func (h *Handler) TrackRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/{campaignID}/view", h.TrackView)
	r.Post("/{campaignID}/click", h.TrackClick)

	return r
}

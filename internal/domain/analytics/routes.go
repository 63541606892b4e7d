package analytics

import "github.com/go-chi/chi/v5"

// Routes returns analytics routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/campaigns/{id}", h.CampaignDetail)
	r.Get("/summary", h.FleetSummary)
	r.Get("/export", h.Export)

	return r
}

package targeting

import "github.com/go-chi/chi/v5"

// Routes returns targeting catalog routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/geozones", func(r chi.Router) {
		r.Get("/", h.ListGeoZones)
		r.Post("/", h.CreateGeoZone)
		r.Get("/{id}", h.GetGeoZone)
		r.Put("/{id}", h.UpdateGeoZone)
		r.Delete("/{id}", h.DeleteGeoZone)
	})

	r.Route("/skill-categories", func(r chi.Router) {
		r.Get("/", h.ListSkillCategories)
		r.Get("/{id}", h.GetSkillCategory)
	})

	return r
}

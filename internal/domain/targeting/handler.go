package targeting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwork/mwork-ads/internal/pkg/errorhandler"
	"github.com/mwork/mwork-ads/internal/pkg/response"
	"github.com/mwork/mwork-ads/internal/pkg/validator"
)

// Handler handles targeting catalog HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates targeting handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListGeoZones lists all geo zones
// GET /geozones
func (h *Handler) ListGeoZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.service.ListGeoZones(r.Context())
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, zones)
}

// GetGeoZone returns one geo zone
// GET /geozones/{id}
func (h *Handler) GetGeoZone(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid geo zone ID")
		return
	}

	zone, err := h.service.GetGeoZone(r.Context(), id)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, zone)
}

// CreateGeoZone creates a geo zone
// POST /geozones
func (h *Handler) CreateGeoZone(w http.ResponseWriter, r *http.Request) {
	var req CreateGeoZoneRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	zone, err := h.service.CreateGeoZone(r.Context(), &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, zone)
}

// UpdateGeoZone updates a geo zone
// PUT /geozones/{id}
func (h *Handler) UpdateGeoZone(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid geo zone ID")
		return
	}

	var req UpdateGeoZoneRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	zone, err := h.service.UpdateGeoZone(r.Context(), id, &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, zone)
}

// DeleteGeoZone removes a geo zone
// DELETE /geozones/{id}
func (h *Handler) DeleteGeoZone(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid geo zone ID")
		return
	}

	if err := h.service.DeleteGeoZone(r.Context(), id); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.NoContent(w)
}

// ListSkillCategories lists the skill category tag set
// GET /skill-categories
func (h *Handler) ListSkillCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListSkillCategories(r.Context())
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, categories)
}

// GetSkillCategory returns one skill category
// GET /skill-categories/{id}
func (h *Handler) GetSkillCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid skill category ID")
		return
	}

	category, err := h.service.GetSkillCategory(r.Context(), id)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, category)
}

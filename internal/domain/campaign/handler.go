package campaign

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwork/mwork-ads/internal/pkg/errorhandler"
	"github.com/mwork/mwork-ads/internal/pkg/response"
	"github.com/mwork/mwork-ads/internal/pkg/validator"
)

// Handler handles campaign HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates campaign handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List lists campaigns with optional filters
// GET /campaigns?status=&advertiser_id=&title=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := &ListFilter{
		Status: Status(r.URL.Query().Get("status")),
		Title:  r.URL.Query().Get("title"),
	}

	if raw := r.URL.Query().Get("advertiser_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid advertiser ID")
			return
		}
		filter.AdvertiserID = &id
	}

	campaigns, err := h.service.List(r.Context(), filter)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, campaigns)
}

// Get returns one campaign
// GET /campaigns/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, c)
}

// Create creates a new campaign in draft
// POST /campaigns
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCampaignRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.service.Create(r.Context(), &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, c)
}

// Update replaces a campaign's mutable fields
// PUT /campaigns/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	var req UpdateCampaignRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, c)
}

// Transition moves a campaign through its status state machine
// POST /campaigns/{id}/transition
func (h *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	var req TransitionRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.service.Transition(r.Context(), id, Status(req.Status))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, c)
}

// Delete removes a campaign and cascades to its children
// DELETE /campaigns/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.NoContent(w)
}

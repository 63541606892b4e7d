package advertisement

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwork/mwork-ads/internal/pkg/errorhandler"
	"github.com/mwork/mwork-ads/internal/pkg/response"
	"github.com/mwork/mwork-ads/internal/pkg/validator"
)

// Handler handles advertisement HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates advertisement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List lists creatives, optionally for a single campaign
// GET /advertisements?campaign_id=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("campaign_id")
	if raw == "" {
		response.BadRequest(w, "campaign_id query parameter is required")
		return
	}

	campaignID, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	ads, err := h.service.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, ads)
}

// Get returns one creative
// GET /advertisements/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	ad, err := h.service.Get(r.Context(), id)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, ad)
}

// Create attaches a new creative to a campaign
// POST /advertisements
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAdvertisementRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	ad, err := h.service.Create(r.Context(), &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, ad)
}

// Update partially updates a creative
// PUT /advertisements/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	var req UpdateAdvertisementRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	ad, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, ad)
}

// Delete removes a creative
// DELETE /advertisements/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.NoContent(w)
}

package performance

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwork/mwork-ads/internal/pkg/errorhandler"
	"github.com/mwork/mwork-ads/internal/pkg/response"
	"github.com/mwork/mwork-ads/internal/pkg/validator"
)

// Handler handles performance HTTP requests
type Handler struct {
	service  *Service
	recorder *Recorder
}

// NewHandler creates performance handler
func NewHandler(service *Service, recorder *Recorder) *Handler {
	return &Handler{service: service, recorder: recorder}
}

// List returns a campaign's daily records with derived rates
// GET /campaignperformances?campaign=&from=&to=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("campaign")
	if raw == "" {
		response.BadRequest(w, "campaign query parameter is required")
		return
	}

	campaignID, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	rng, err := parseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	records, err := h.service.RecordsForCampaign(r.Context(), campaignID, rng)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, Derive(records))
}

// Ingest appends one externally produced daily counter row
// POST /campaignperformances
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.service.Ingest(r.Context(), &req); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, map[string]string{"message": "Performance row recorded"})
}

// TrackView counts one ad view
// POST /track/{campaignID}/view
func (h *Handler) TrackView(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, h.recorder.TrackView)
}

// TrackClick counts one ad click
// POST /track/{campaignID}/click
func (h *Handler) TrackClick(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, h.recorder.TrackClick)
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) error) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	if err := fn(r.Context(), campaignID); err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.NoContent(w)
}

func parseDateRange(fromStr, toStr string) (*DateRange, error) {
	if fromStr == "" && toStr == "" {
		return nil, nil
	}

	rng := &DateRange{}
	var err error
	if fromStr != "" {
		if rng.From, err = time.Parse(dateLayout, fromStr); err != nil {
			return nil, err
		}
	}
	if toStr != "" {
		if rng.To, err = time.Parse(dateLayout, toStr); err != nil {
			return nil, err
		}
	} else {
		rng.To = time.Now()
	}
	return rng, nil
}

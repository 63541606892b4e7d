package analytics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mwork/mwork-ads/internal/domain/campaign"
	"github.com/mwork/mwork-ads/internal/pkg/errorhandler"
	"github.com/mwork/mwork-ads/internal/pkg/response"
)

// Handler handles analytics HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates analytics handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CampaignDetail returns the assembled single-campaign view
// GET /analytics/campaigns/{id}
func (h *Handler) CampaignDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	detail, err := h.service.CampaignDetail(r.Context(), id)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, detail)
}

// FleetSummary returns the dashboard rollup
// GET /analytics/summary?status=&advertiser_id=&title=
func (h *Handler) FleetSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	summary, err := h.service.FleetSummary(r.Context(), filter)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, summary)
}

// Export streams the campaign list as a downloadable file
// GET /analytics/export?format=csv|xlsx&status=&advertiser_id=&title=
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		response.BadRequest(w, "format must be csv or xlsx")
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	rows, err := h.service.Export(r.Context(), filter)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}

	filename := "campaigns-" + time.Now().Format("2006-01-02") + "." + format
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if format == "xlsx" {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = WriteXLSX(w, rows)
	} else {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		err = WriteCSV(w, rows)
	}
	if err != nil {
		// Headers are already out; all we can do is log the broken stream.
		log.Error().Err(err).Str("format", format).Msg("Failed to stream campaign export")
	}
}

// parseFilter reads campaign list filters from the query string. All
// parameters absent means nil, which FleetSummary treats as every
// non-cancelled campaign.
func parseFilter(r *http.Request) (*campaign.ListFilter, error) {
	q := r.URL.Query()
	if q.Get("status") == "" && q.Get("advertiser_id") == "" && q.Get("title") == "" {
		return nil, nil
	}

	filter := &campaign.ListFilter{
		Status: campaign.Status(q.Get("status")),
		Title:  q.Get("title"),
	}
	if raw := q.Get("advertiser_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		filter.AdvertiserID = &id
	}
	return filter, nil
}

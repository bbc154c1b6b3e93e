package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"biz-awards/internal/core/port"
)

// handleTransitionNomination serves PUT /api/admin/nominations/{id}/status.
// Illegal moves come back as 400 with the state machine's explanation
// and leave the nomination untouched.
func (h *Handler) handleTransitionNomination(w http.ResponseWriter, r *http.Request) {
	id, ok := nominationID(r)
	if !ok {
		h.writeFailure(w, http.StatusBadRequest, "invalid nomination id")
		return
	}
	var in port.TransitionInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	n, err := h.deps.Nominations.Transition(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, toNominationResponse(n))
}

// handleAnalyticsOverview serves GET /api/admin/analytics/overview.
func (h *Handler) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.deps.Analytics.Overview(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, ov)
}

// handleAnalyticsTrends serves GET /api/admin/analytics/trends with
// optional days and campaign_id query parameters.
func (h *Handler) handleAnalyticsTrends(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var req port.TrendsRequest

	if raw := q.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			h.writeFailure(w, http.StatusBadRequest, "invalid days")
			return
		}
		req.Days = days
	}
	if raw := q.Get("campaign_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.writeFailure(w, http.StatusBadRequest, "invalid campaign_id")
			return
		}
		req.CampaignID = &id
	}

	points, err := h.deps.Analytics.Trends(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, points)
}

package httpadapter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// handleNextAd serves GET /api/ads/next?type=<placement>&exclude=<id,…>.
// An empty selection is a normal outcome for the client (no ad slot
// rendered), so it gets the fixed "No active ads" message rather than
// the wrapped error detail.
func (h *Handler) handleNextAd(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	placement := domain.Placement(q.Get("type"))

	var exclude []uuid.UUID
	if raw := q.Get("exclude"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				h.writeFailure(w, http.StatusBadRequest, "invalid exclude id")
				return
			}
			exclude = append(exclude, id)
		}
	}

	ad, err := h.deps.Ads.NextAd(r.Context(), placement, exclude, sessionFrom(r.Context()))
	if errors.Is(err, port.ErrNotFound) {
		h.writeFailure(w, http.StatusNotFound, "No active ads")
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, ad)
}

type trackImpressionRequest struct {
	CampaignID uuid.UUID `json:"campaign_id"`
}

type trackImpressionResponse struct {
	Success      bool      `json:"success"`
	ImpressionID uuid.UUID `json:"impression_id"`
}

// handleTrackImpression serves POST /api/ads/track/impression.
func (h *Handler) handleTrackImpression(w http.ResponseWriter, r *http.Request) {
	var req trackImpressionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := h.deps.Ads.RecordImpression(r.Context(), req.CampaignID, sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trackImpressionResponse{Success: true, ImpressionID: id})
}

type trackClickRequest struct {
	CampaignID   uuid.UUID  `json:"campaign_id"`
	ImpressionID *uuid.UUID `json:"impression_id,omitempty"`
}

type trackClickResponse struct {
	Success bool      `json:"success"`
	ClickID uuid.UUID `json:"click_id"`
}

// handleTrackClick serves POST /api/ads/track/click.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	var req trackClickRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := h.deps.Ads.RecordClick(r.Context(), req.CampaignID, req.ImpressionID, sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trackClickResponse{Success: true, ClickID: id})
}

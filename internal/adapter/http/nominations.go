package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// nominationResponse is the wire shape of a nomination. Timeline fields
// are omitted until stamped.
type nominationResponse struct {
	ID            uuid.UUID                `json:"id"`
	BusinessID    uuid.UUID                `json:"business_id"`
	Category      string                   `json:"category"`
	Subcategory   string                   `json:"subcategory,omitempty"`
	Year          int                      `json:"year"`
	Content       domain.NominationContent `json:"content"`
	Documents     []string                 `json:"documents"`
	Status        domain.NominationStatus  `json:"status"`
	AverageScore  float64                  `json:"average_score"`
	Feedback      string                   `json:"feedback,omitempty"`
	WinnerTier    domain.WinnerTier        `json:"winner_tier"`
	SubmittedAt   *time.Time               `json:"submitted_at,omitempty"`
	ReviewedAt    *time.Time               `json:"reviewed_at,omitempty"`
	ShortlistedAt *time.Time               `json:"shortlisted_at,omitempty"`
	AwardedAt     *time.Time               `json:"awarded_at,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func toNominationResponse(n *domain.Nomination) nominationResponse {
	docs := n.Documents
	if docs == nil {
		docs = []string{}
	}
	return nominationResponse{
		ID:            n.ID,
		BusinessID:    n.BusinessID,
		Category:      n.Category,
		Subcategory:   n.Subcategory,
		Year:          n.Year,
		Content:       n.Content,
		Documents:     docs,
		Status:        n.Status,
		AverageScore:  n.AverageScore,
		Feedback:      n.Feedback,
		WinnerTier:    n.WinnerTier,
		SubmittedAt:   n.SubmittedAt,
		ReviewedAt:    n.ReviewedAt,
		ShortlistedAt: n.ShortlistedAt,
		AwardedAt:     n.AwardedAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func nominationID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// handleCreateNomination serves POST /api/nominations.
func (h *Handler) handleCreateNomination(w http.ResponseWriter, r *http.Request) {
	var in port.CreateNominationInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	caller := callerFrom(r.Context())
	n, err := h.deps.Nominations.Create(r.Context(), caller.UserID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, toNominationResponse(n))
}

// handleListNominations serves GET /api/nominations for the owner.
func (h *Handler) handleListNominations(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())
	list, err := h.deps.Nominations.ListOwn(r.Context(), caller.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]nominationResponse, 0, len(list))
	for i := range list {
		out = append(out, toNominationResponse(&list[i]))
	}
	h.writeData(w, http.StatusOK, out)
}

// handleGetNomination serves GET /api/nominations/{id}.
func (h *Handler) handleGetNomination(w http.ResponseWriter, r *http.Request) {
	id, ok := nominationID(r)
	if !ok {
		h.writeFailure(w, http.StatusBadRequest, "invalid nomination id")
		return
	}
	n, err := h.deps.Nominations.Get(r.Context(), id, callerFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, toNominationResponse(n))
}

// handleSubmitNomination serves PUT /api/nominations/{id}/submit.
func (h *Handler) handleSubmitNomination(w http.ResponseWriter, r *http.Request) {
	id, ok := nominationID(r)
	if !ok {
		h.writeFailure(w, http.StatusBadRequest, "invalid nomination id")
		return
	}
	caller := callerFrom(r.Context())
	n, err := h.deps.Nominations.Submit(r.Context(), id, caller.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, toNominationResponse(n))
}

type scoreResponse struct {
	ID           uuid.UUID `json:"id"`
	NominationID uuid.UUID `json:"nomination_id"`
	Criterion    string    `json:"criterion"`
	Value        float64   `json:"value"`
	Comments     string    `json:"comments,omitempty"`
}

func toScoreResponse(s *domain.Score) scoreResponse {
	return scoreResponse{
		ID:           s.ID,
		NominationID: s.NominationID,
		Criterion:    s.Criterion,
		Value:        s.Value,
		Comments:     s.Comments,
	}
}

// handleAddScore serves POST /api/judge/nominations/{id}/scores.
func (h *Handler) handleAddScore(w http.ResponseWriter, r *http.Request) {
	id, ok := nominationID(r)
	if !ok {
		h.writeFailure(w, http.StatusBadRequest, "invalid nomination id")
		return
	}
	var in port.ScoreInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	caller := callerFrom(r.Context())
	s, err := h.deps.Nominations.AddScore(r.Context(), id, caller.UserID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, toScoreResponse(s))
}

// handleListScores serves GET /api/judge/nominations/{id}/scores.
func (h *Handler) handleListScores(w http.ResponseWriter, r *http.Request) {
	id, ok := nominationID(r)
	if !ok {
		h.writeFailure(w, http.StatusBadRequest, "invalid nomination id")
		return
	}
	scores, err := h.deps.Nominations.ListScores(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]scoreResponse, 0, len(scores))
	for i := range scores {
		out = append(out, toScoreResponse(&scores[i]))
	}
	h.writeData(w, http.StatusOK, out)
}

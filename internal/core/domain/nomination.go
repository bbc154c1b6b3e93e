package domain

import (
	"time"

	"github.com/google/uuid"
)

// NominationStatus is the lifecycle state of an award nomination.
type NominationStatus string

const (
	NominationDraft       NominationStatus = "draft"
	NominationSubmitted   NominationStatus = "submitted"
	NominationUnderReview NominationStatus = "under_review"
	NominationShortlisted NominationStatus = "shortlisted"
	NominationFinalist    NominationStatus = "finalist"
	NominationWinner      NominationStatus = "winner"
	NominationNotSelected NominationStatus = "not_selected"
)

// WinnerTier is the medal tier assigned when a nomination wins.
type WinnerTier string

const (
	TierGold   WinnerTier = "gold"
	TierSilver WinnerTier = "silver"
	TierBronze WinnerTier = "bronze"
	TierNone   WinnerTier = "none"
)

// nominationGraph is the set of legal status successors. The pipeline is
// strict: every nomination passes through each stage in order, and
// not_selected is reachable from any post-submission stage. winner and
// not_selected are terminal.
var nominationGraph = map[NominationStatus][]NominationStatus{
	NominationDraft:       {NominationSubmitted},
	NominationSubmitted:   {NominationUnderReview, NominationNotSelected},
	NominationUnderReview: {NominationShortlisted, NominationNotSelected},
	NominationShortlisted: {NominationFinalist, NominationNotSelected},
	NominationFinalist:    {NominationWinner, NominationNotSelected},
}

// CanTransition reports whether moving from to next is a legal step in
// the nomination state machine.
func CanTransition(from, to NominationStatus) bool {
	for _, next := range nominationGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidNominationStatus reports whether s is a known status value.
func ValidNominationStatus(s NominationStatus) bool {
	switch s {
	case NominationDraft, NominationSubmitted, NominationUnderReview,
		NominationShortlisted, NominationFinalist, NominationWinner,
		NominationNotSelected:
		return true
	}
	return false
}

// Scorable reports whether judges may score a nomination in status s.
func Scorable(s NominationStatus) bool {
	return s == NominationSubmitted || s == NominationUnderReview
}

// NominationContent holds the free-text and structured sub-documents of a
// submission. Stored as a single JSON document.
type NominationContent struct {
	Summary              string `json:"summary"`
	FinancialPerformance string `json:"financial_performance,omitempty"`
	Innovations          string `json:"innovations,omitempty"`
	SocialImpact         string `json:"social_impact,omitempty"`
	MarketPosition       string `json:"market_position,omitempty"`
}

// Nomination is a business's entry into an award cycle. Version guards
// state transitions with optimistic concurrency; every successful
// transition increments it.
type Nomination struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	Category      string
	Subcategory   string
	Year          int
	Content       NominationContent
	Documents     []string
	Status        NominationStatus
	AverageScore  float64
	Feedback      string
	WinnerTier    WinnerTier
	SubmittedAt   *time.Time
	ReviewedAt    *time.Time
	ShortlistedAt *time.Time
	AwardedAt     *time.Time
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Score is one judge's evaluation of a nomination against one criterion.
// Values are on a 0-100 scale.
type Score struct {
	ID           uuid.UUID
	NominationID uuid.UUID
	JudgeID      uuid.UUID
	Criterion    string
	Value        float64
	Comments     string
	CreatedAt    time.Time
}

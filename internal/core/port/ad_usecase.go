package port

import (
	"context"

	"github.com/google/uuid"

	"biz-awards/internal/core/domain"
)

// AdUseCase defines the business operations of the ad engine. This is
// the primary inbound port; mock implementations back the handler and
// usecase tests.
type AdUseCase interface {
	// NextAd selects one eligible campaign for the placement uniformly
	// at random, skipping the excluded ids and campaigns not targeting
	// the session's device class. Returns ErrNotFound when no campaign
	// qualifies; that is a normal empty result, not a failure.
	NextAd(ctx context.Context, placement domain.Placement, exclude []uuid.UUID, session domain.SessionContext) (*AdResponse, error)

	// RecordImpression appends an impression fact for the campaign and
	// bumps its impression counter by exactly one. Returns the new
	// impression id.
	RecordImpression(ctx context.Context, campaignID uuid.UUID, session domain.SessionContext) (uuid.UUID, error)

	// RecordClick appends a click fact, optionally back-referencing the
	// impression that produced it, and bumps the click counter by
	// exactly one. Returns the new click id.
	RecordClick(ctx context.Context, campaignID uuid.UUID, impressionID *uuid.UUID, session domain.SessionContext) (uuid.UUID, error)
}

// AdResponse is the public projection of a selected campaign. Budget,
// payment and counter fields are internal and must never reach the
// client.
type AdResponse struct {
	ID             uuid.UUID `json:"id"`
	ImageURL       string    `json:"image_url"`
	MobileImageURL string    `json:"mobile_image_url"`
	AltText        string    `json:"alt_text"`
	TargetURL      string    `json:"target_url"`
	BusinessName   string    `json:"business_name"`
}

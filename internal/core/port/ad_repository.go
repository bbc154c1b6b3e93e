package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"biz-awards/internal/core/domain"
)

// AdRepository defines the persistence layer for the ad engine. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; counter increments must be atomic in-database adds,
// never application-level read-modify-write.
type AdRepository interface {
	// GetEligibleCampaigns returns every campaign matching the
	// eligibility invariant for the placement at the given instant,
	// excluding the supplied ids. Order is unspecified; the caller picks
	// among them.
	GetEligibleCampaigns(ctx context.Context, placement domain.Placement, exclude []uuid.UUID, now time.Time) ([]domain.Campaign, error)

	// CreateImpression inserts the impression fact and increments the
	// campaign impression counter in one transaction. Returns
	// ErrNotFound when the campaign does not exist; no rows are written
	// in that case.
	CreateImpression(ctx context.Context, imp *domain.Impression) error

	// CreateClick inserts the click fact and increments the campaign
	// click counter in one transaction. Returns ErrNotFound when the
	// campaign does not exist.
	CreateClick(ctx context.Context, click *domain.Click) error

	// GetCampaign returns a campaign by id, or ErrNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
}

package usecase

import (
	"context"

	"biz-awards/internal/core/port"
)

const maxTrendDays = 365

// AnalyticsUseCase exposes dashboard projections. It clamps the trend
// window and otherwise delegates to the repository; the numbers are
// snapshot reads with no consistency guarantee against in-flight writes.
type AnalyticsUseCase struct {
	repo      port.AnalyticsRepository
	campaigns port.AdRepository
}

// NewAnalyticsUseCase creates a new usecase.
func NewAnalyticsUseCase(repo port.AnalyticsRepository, campaigns port.AdRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, campaigns: campaigns}
}

// Overview returns current entity counts for the admin dashboard.
func (u *AnalyticsUseCase) Overview(ctx context.Context) (*port.Overview, error) {
	return u.repo.Overview(ctx)
}

// Trends returns daily activity buckets for the requested window,
// defaulting to 30 days and capping at a year. Filtering by a campaign
// that does not exist is ErrNotFound rather than an all-zero series.
func (u *AnalyticsUseCase) Trends(ctx context.Context, req port.TrendsRequest) ([]port.TrendPoint, error) {
	if req.Days <= 0 {
		req.Days = 30
	}
	if req.Days > maxTrendDays {
		req.Days = maxTrendDays
	}
	if req.CampaignID != nil {
		if _, err := u.campaigns.GetCampaign(ctx, *req.CampaignID); err != nil {
			return nil, err
		}
	}
	return u.repo.Trends(ctx, req)
}

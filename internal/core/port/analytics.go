package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Overview is a point-in-time snapshot of entity counts for dashboards.
// It is read under no locks; concurrent writes may or may not be
// reflected.
type Overview struct {
	UsersByStatus         map[string]int64 `json:"users_by_status"`
	NominationsByStatus   map[string]int64 `json:"nominations_by_status"`
	NominationsByCategory map[string]int64 `json:"nominations_by_category"`
	CampaignsByStatus     map[string]int64 `json:"campaigns_by_status"`
	TotalImpressions      int64            `json:"total_impressions"`
	TotalClicks           int64            `json:"total_clicks"`
}

// TrendPoint is one daily bucket of activity counts.
type TrendPoint struct {
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Submissions int64     `json:"submissions"`
}

// TrendsRequest selects the trend window and an optional campaign
// filter for the impression/click series.
type TrendsRequest struct {
	Days       int
	CampaignID *uuid.UUID
}

// AnalyticsRepository computes read-only projections over the primary
// collections.
type AnalyticsRepository interface {
	Overview(ctx context.Context) (*Overview, error)
	Trends(ctx context.Context, req TrendsRequest) ([]TrendPoint, error)
}

// AnalyticsUseCase exposes dashboard projections to the HTTP layer.
type AnalyticsUseCase interface {
	Overview(ctx context.Context) (*Overview, error)
	Trends(ctx context.Context, req TrendsRequest) ([]TrendPoint, error)
}

package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"biz-awards/internal/core/port"
)

// AnalyticsRepository computes dashboard projections with plain
// aggregate queries. Reads take no locks; the numbers are a best-effort
// snapshot under concurrent writes.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// NewAnalyticsRepository returns a new repository instance.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AnalyticsRepository) countBy(ctx context.Context, table, column string) (map[string]int64, error) {
	query, args, err := r.sb.
		Select(column, "COUNT(*)").
		From(table).
		GroupBy(column).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count %s by %s: %w", table, column, err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			key   string
			count int64
		)
		if err = rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		out[key] = count
	}
	return out, rows.Err()
}

// Overview returns entity counts grouped by status/category plus event
// totals. Event totals come from the fact tables, not the cached
// campaign counters, since the facts are authoritative.
func (r *AnalyticsRepository) Overview(ctx context.Context) (*port.Overview, error) {
	ov := &port.Overview{}

	var err error
	if ov.UsersByStatus, err = r.countBy(ctx, "users", "status"); err != nil {
		return nil, err
	}
	if ov.NominationsByStatus, err = r.countBy(ctx, "nominations", "status"); err != nil {
		return nil, err
	}
	if ov.NominationsByCategory, err = r.countBy(ctx, "nominations", "category"); err != nil {
		return nil, err
	}
	if ov.CampaignsByStatus, err = r.countBy(ctx, "campaigns", "status"); err != nil {
		return nil, err
	}

	if err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM impressions`).Scan(&ov.TotalImpressions); err != nil {
		return nil, err
	}
	if err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clicks`).Scan(&ov.TotalClicks); err != nil {
		return nil, err
	}
	return ov, nil
}

func (r *AnalyticsRepository) dailyCounts(ctx context.Context, table, tsColumn string, since time.Time, campaignID any) (map[time.Time]int64, error) {
	// Bucket on the UTC calendar day. date_trunc without a zone cast
	// truncates in the server's session timezone, which would misalign
	// the buckets with the UTC keys the series is assembled on.
	b := r.sb.
		Select(fmt.Sprintf("(%s AT TIME ZONE 'UTC')::date AS day", tsColumn), "COUNT(*)").
		From(table).
		Where(sq.GtOrEq{tsColumn: since}).
		GroupBy("day")
	if campaignID != nil {
		b = b.Where(sq.Eq{"campaign_id": campaignID})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("daily %s: %w", table, err)
	}
	defer rows.Close()

	out := make(map[time.Time]int64)
	for rows.Next() {
		var (
			day   time.Time
			count int64
		)
		if err = rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		out[day.UTC()] = count
	}
	return out, rows.Err()
}

// Trends returns one point per day for the requested window, oldest
// first. Days without activity are present with zero counts so the
// dashboard can chart a continuous series.
func (r *AnalyticsRepository) Trends(ctx context.Context, req port.TrendsRequest) ([]port.TrendPoint, error) {
	days := req.Days
	if days <= 0 {
		days = 30
	}
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))

	var campaignFilter any
	if req.CampaignID != nil {
		campaignFilter = *req.CampaignID
	}

	impressions, err := r.dailyCounts(ctx, "impressions", "created_at", start, campaignFilter)
	if err != nil {
		return nil, err
	}
	clicks, err := r.dailyCounts(ctx, "clicks", "created_at", start, campaignFilter)
	if err != nil {
		return nil, err
	}
	submissions, err := r.dailyCounts(ctx, "nominations", "submitted_at", start, nil)
	if err != nil {
		return nil, err
	}

	return buildTrendSeries(start, days, impressions, clicks, submissions), nil
}

// buildTrendSeries zero-fills one point per UTC day so the dashboard can
// chart a continuous series. All map keys must be UTC midnights.
func buildTrendSeries(start time.Time, days int, impressions, clicks, submissions map[time.Time]int64) []port.TrendPoint {
	points := make([]port.TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		points = append(points, port.TrendPoint{
			Date:        day,
			Impressions: impressions[day],
			Clicks:      clicks[day],
			Submissions: submissions[day],
		})
	}
	return points
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const campaignColumns = `
    c.id, c.advertiser_id, a.business_name, c.placement,
    c.image_url, c.mobile_image_url, c.alt_text, c.target_url,
    c.start_date, c.end_date, c.total_budget, c.daily_budget,
    c.max_impressions, c.max_clicks, c.current_impressions, c.current_clicks,
    c.devices, c.status, c.payment_status, c.created_at, c.updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c          domain.Campaign
		devicesRaw []byte
	)
	err := row.Scan(
		&c.ID, &c.AdvertiserID, &c.BusinessName, &c.Placement,
		&c.ImageURL, &c.MobileImageURL, &c.AltText, &c.TargetURL,
		&c.StartDate, &c.EndDate, &c.TotalBudget, &c.DailyBudget,
		&c.MaxImpressions, &c.MaxClicks, &c.CurrentImpressions, &c.CurrentClicks,
		&devicesRaw, &c.Status, &c.PaymentStatus, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if len(devicesRaw) > 0 {
		if err = json.Unmarshal(devicesRaw, &c.Devices); err != nil {
			return c, fmt.Errorf("decode devices: %w", err)
		}
	}
	return c, nil
}

// GetEligibleCampaigns returns campaigns satisfying the serving
// invariant for the placement at the given instant. The impression cap
// is evaluated here, before selection, so a concurrent burst may
// overshoot the cap by the number of in-flight requests.
func (r *AdRepository) GetEligibleCampaigns(ctx context.Context, placement domain.Placement, exclude []uuid.UUID, now time.Time) ([]domain.Campaign, error) {
	query := `
        SELECT` + campaignColumns + `
        FROM campaigns c
        JOIN advertisers a ON a.id = c.advertiser_id
        WHERE c.placement = $1
          AND c.status = 'active'
          AND c.payment_status = 'paid'
          AND $2 BETWEEN c.start_date AND c.end_date
          AND (c.max_impressions IS NULL OR c.current_impressions < c.max_impressions)
          AND NOT (c.id = ANY($3))`
	if exclude == nil {
		exclude = []uuid.UUID{}
	}
	rows, err := r.pool.Query(ctx, query, placement, now, exclude)
	if err != nil {
		return nil, fmt.Errorf("eligible campaigns: %w", err)
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaign returns a campaign by id.
func (r *AdRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	query := `
        SELECT` + campaignColumns + `
        FROM campaigns c
        JOIN advertisers a ON a.id = c.advertiser_id
        WHERE c.id = $1`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %s: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateImpression inserts the impression fact and bumps the campaign
// impression counter inside one transaction. The counter update is an
// in-database add, so concurrent recorders never lose increments. A
// missing campaign aborts before any row is written.
func (r *AdRepository) CreateImpression(ctx context.Context, imp *domain.Impression) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
        UPDATE campaigns
        SET current_impressions = current_impressions + 1, updated_at = now()
        WHERE id = $1`, imp.CampaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("campaign %s: %w", imp.CampaignID, port.ErrNotFound)
		return err
	}

	imp.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `
        INSERT INTO impressions (id, campaign_id, session_id, ip, user_agent, referrer, device, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		imp.ID, imp.CampaignID, imp.SessionID, imp.IP, imp.UserAgent, imp.Referrer, imp.Device, imp.CreatedAt)
	return err
}

// CreateClick inserts the click fact and bumps the campaign click
// counter inside one transaction.
func (r *AdRepository) CreateClick(ctx context.Context, click *domain.Click) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
        UPDATE campaigns
        SET current_clicks = current_clicks + 1, updated_at = now()
        WHERE id = $1`, click.CampaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("campaign %s: %w", click.CampaignID, port.ErrNotFound)
		return err
	}

	click.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `
        INSERT INTO clicks (id, campaign_id, impression_id, session_id, ip, user_agent, converted, conversion_value, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		click.ID, click.CampaignID, click.ImpressionID, click.SessionID, click.IP, click.UserAgent,
		click.Converted, click.ConversionValue, click.CreatedAt)
	return err
}

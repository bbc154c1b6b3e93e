package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: one advertiser with paid campaigns in every
// placement, a verified business, an active admin, a judge, and a draft
// nomination. Inserts are idempotent via ON CONFLICT DO NOTHING, except
// the randomly keyed event filler at the end.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	advertiserID := uuid.MustParse("0b6e7c1e-2a4f-4d39-9f1a-111111111111")
	_, err := pool.Exec(ctx, `
        INSERT INTO advertisers (id, business_name, contact_email, payment_method, status)
        VALUES ($1, 'Acme Holdings', 'ads@acme.example', 'invoice', 'active')
        ON CONFLICT DO NOTHING`, advertiserID)
	if err != nil {
		return err
	}

	placements := []string{"popup", "banner", "sidebar", "hero"}
	devices, _ := json.Marshal([]string{})
	campaignIDs := make([]uuid.UUID, 0, len(placements))
	for i, placement := range placements {
		id := uuid.MustParse(fmt.Sprintf("0b6e7c1e-2a4f-4d39-9f1a-22222222222%d", i))
		campaignIDs = append(campaignIDs, id)
		_, err = pool.Exec(ctx, `
            INSERT INTO campaigns
                (id, advertiser_id, placement, image_url, mobile_image_url, alt_text, target_url,
                 start_date, end_date, max_impressions, devices, status, payment_status)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,'active','paid')
            ON CONFLICT DO NOTHING`,
			id, advertiserID, placement,
			fmt.Sprintf("https://cdn.example/ads/%s.png", placement),
			fmt.Sprintf("https://cdn.example/ads/%s-mobile.png", placement),
			"Acme "+placement+" ad", "https://acme.example/offers",
			time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 1, 0),
			int64(100000), devices)
		if err != nil {
			return err
		}
	}

	users := []struct {
		id       uuid.UUID
		email    string
		name     string
		role     string
		status   string
		verified bool
	}{
		{uuid.MustParse("0b6e7c1e-2a4f-4d39-9f1a-333333333330"), "biz@example.com", "Verified Biz", "business", "active", true},
		{uuid.MustParse("0b6e7c1e-2a4f-4d39-9f1a-333333333331"), "admin@example.com", "Admin", "admin", "active", true},
		{uuid.MustParse("0b6e7c1e-2a4f-4d39-9f1a-333333333332"), "judge@example.com", "Judge", "judge", "active", true},
	}
	for _, u := range users {
		_, err = pool.Exec(ctx, `
            INSERT INTO users (id, email, name, role, status, verified)
            VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			u.id, u.email, u.name, u.role, u.status, u.verified)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `
            INSERT INTO auth_tokens (token, user_id, expires_at)
            VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`,
			"dev-"+u.role, u.id, time.Now().AddDate(1, 0, 0))
		if err != nil {
			return err
		}
	}

	content, _ := json.Marshal(map[string]string{
		"summary":     "A demo nomination",
		"innovations": "New widget line",
	})
	_, err = pool.Exec(ctx, `
        INSERT INTO nominations (id, business_id, category, year, content, status)
        VALUES ($1,$2,'Innovation',$3,$4,'draft') ON CONFLICT DO NOTHING`,
		uuid.MustParse("0b6e7c1e-2a4f-4d39-9f1a-444444444440"),
		users[0].id, time.Now().Year(), content)
	if err != nil {
		return err
	}

	// a little traffic so the analytics endpoints have something to show
	for i := 0; i < 200; i++ {
		campaignID := campaignIDs[r.Intn(len(campaignIDs))]
		impID := uuid.New()
		createdAt := time.Now().Add(-time.Duration(r.Intn(7*24)) * time.Hour)
		_, err = pool.Exec(ctx, `
            INSERT INTO impressions (id, campaign_id, session_id, device, created_at)
            VALUES ($1,$2,$3,'desktop',$4)`,
			impID, campaignID, fmt.Sprintf("seed-session-%d", r.Intn(40)), createdAt)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `
            UPDATE campaigns SET current_impressions = current_impressions + 1 WHERE id = $1`, campaignID)
		if err != nil {
			return err
		}
		if r.Intn(10) == 0 {
			_, err = pool.Exec(ctx, `
                INSERT INTO clicks (id, campaign_id, impression_id, session_id, created_at)
                VALUES ($1,$2,$3,$4,$5)`,
				uuid.New(), campaignID, impID, fmt.Sprintf("seed-session-%d", r.Intn(40)), createdAt)
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx, `
                UPDATE campaigns SET current_clicks = current_clicks + 1 WHERE id = $1`, campaignID)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

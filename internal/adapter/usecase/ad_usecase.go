package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// AdUseCase provides ad selection and event recording. It orchestrates
// the repository to implement the port.AdUseCase interface.
type AdUseCase struct {
	repo port.AdRepository

	// rng drives the uniform-random pick among eligible campaigns.
	// *rand.Rand is not safe for concurrent use, hence the mutex.
	mu  sync.Mutex
	rng *rand.Rand

	now func() time.Time
}

// NewAdUseCase creates a new usecase with the provided repository.
func NewAdUseCase(repo port.AdRepository) *AdUseCase {
	return &AdUseCase{
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// NextAd returns one eligible campaign for the placement, chosen
// uniformly at random so equally eligible advertisers get equal exposure
// probability over many requests. Campaigns in exclude or not targeting
// the session's device class are skipped. ErrNotFound signals an empty
// result, which callers render as "no ad".
func (u *AdUseCase) NextAd(ctx context.Context, placement domain.Placement, exclude []uuid.UUID, session domain.SessionContext) (*port.AdResponse, error) {
	if !domain.ValidPlacement(placement) {
		return nil, fmt.Errorf("placement %q: %w", placement, port.ErrValidation)
	}

	candidates, err := u.repo.GetEligibleCampaigns(ctx, placement, exclude, u.now())
	if err != nil {
		return nil, err
	}

	matching := make([]domain.Campaign, 0, len(candidates))
	for _, c := range candidates {
		if c.TargetsDevice(session.Device) {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return nil, fmt.Errorf("no active ads for placement %q: %w", placement, port.ErrNotFound)
	}

	u.mu.Lock()
	chosen := matching[u.rng.Intn(len(matching))]
	u.mu.Unlock()

	return &port.AdResponse{
		ID:             chosen.ID,
		ImageURL:       chosen.ImageURL,
		MobileImageURL: chosen.MobileImageURL,
		AltText:        chosen.AltText,
		TargetURL:      chosen.TargetURL,
		BusinessName:   chosen.BusinessName,
	}, nil
}

// RecordImpression appends the impression fact and bumps the campaign
// counter by exactly one. The device class comes from the session, which
// inferred it from the user agent.
func (u *AdUseCase) RecordImpression(ctx context.Context, campaignID uuid.UUID, session domain.SessionContext) (uuid.UUID, error) {
	if campaignID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("campaign_id is required: %w", port.ErrValidation)
	}
	imp := &domain.Impression{
		ID:         uuid.New(),
		CampaignID: campaignID,
		SessionID:  session.SessionID,
		IP:         session.IP,
		UserAgent:  session.UserAgent,
		Referrer:   session.Referrer,
		Device:     session.Device,
	}
	if err := u.repo.CreateImpression(ctx, imp); err != nil {
		return uuid.Nil, err
	}
	return imp.ID, nil
}

// RecordClick appends the click fact and bumps the campaign counter by
// exactly one. impressionID, when present, is stored as a back-reference
// only.
func (u *AdUseCase) RecordClick(ctx context.Context, campaignID uuid.UUID, impressionID *uuid.UUID, session domain.SessionContext) (uuid.UUID, error) {
	if campaignID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("campaign_id is required: %w", port.ErrValidation)
	}
	click := &domain.Click{
		ID:           uuid.New(),
		CampaignID:   campaignID,
		ImpressionID: impressionID,
		SessionID:    session.SessionID,
		IP:           session.IP,
		UserAgent:    session.UserAgent,
	}
	if err := u.repo.CreateClick(ctx, click); err != nil {
		return uuid.Nil, err
	}
	return click.ID, nil
}

package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
	"biz-awards/internal/core/port/mocks"
)

func TestTrendsClampsWindow(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	repo.On("Trends", mock.Anything, port.TrendsRequest{Days: 30}).Return([]port.TrendPoint{}, nil).Once()
	repo.On("Trends", mock.Anything, port.TrendsRequest{Days: 365}).Return([]port.TrendPoint{}, nil).Once()
	repo.On("Trends", mock.Anything, port.TrendsRequest{Days: 7}).Return([]port.TrendPoint{}, nil).Once()

	svc := NewAnalyticsUseCase(repo, new(mocks.AdRepository))

	_, err := svc.Trends(context.Background(), port.TrendsRequest{Days: 0})
	require.NoError(t, err)
	_, err = svc.Trends(context.Background(), port.TrendsRequest{Days: 9999})
	require.NoError(t, err)
	_, err = svc.Trends(context.Background(), port.TrendsRequest{Days: 7})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestTrendsUnknownCampaignFilter(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	campaigns := new(mocks.AdRepository)
	id := uuid.New()
	campaigns.On("GetCampaign", mock.Anything, id).
		Return(nil, fmt.Errorf("campaign %s: %w", id, port.ErrNotFound))

	svc := NewAnalyticsUseCase(repo, campaigns)
	_, err := svc.Trends(context.Background(), port.TrendsRequest{Days: 7, CampaignID: &id})
	require.ErrorIs(t, err, port.ErrNotFound)
	repo.AssertNotCalled(t, "Trends", mock.Anything, mock.Anything)
}

func TestTrendsKnownCampaignFilter(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	campaigns := new(mocks.AdRepository)
	id := uuid.New()
	campaigns.On("GetCampaign", mock.Anything, id).Return(&domain.Campaign{ID: id}, nil)
	repo.On("Trends", mock.Anything, mock.MatchedBy(func(req port.TrendsRequest) bool {
		return req.CampaignID != nil && *req.CampaignID == id
	})).Return([]port.TrendPoint{}, nil)

	svc := NewAnalyticsUseCase(repo, campaigns)
	_, err := svc.Trends(context.Background(), port.TrendsRequest{Days: 7, CampaignID: &id})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOverviewPassesThrough(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	ov := &port.Overview{TotalImpressions: 12, TotalClicks: 3}
	repo.On("Overview", mock.Anything).Return(ov, nil)

	svc := NewAnalyticsUseCase(repo, new(mocks.AdRepository))
	got, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Same(t, ov, got)
}

// Package mocks provides testify-based test doubles for the port
// interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// AdRepository mocks port.AdRepository.
type AdRepository struct{ mock.Mock }

func (m *AdRepository) GetEligibleCampaigns(ctx context.Context, placement domain.Placement, exclude []uuid.UUID, now time.Time) ([]domain.Campaign, error) {
	args := m.Called(ctx, placement, exclude, now)
	var out []domain.Campaign
	if v := args.Get(0); v != nil {
		out = v.([]domain.Campaign)
	}
	return out, args.Error(1)
}

func (m *AdRepository) CreateImpression(ctx context.Context, imp *domain.Impression) error {
	return m.Called(ctx, imp).Error(0)
}

func (m *AdRepository) CreateClick(ctx context.Context, click *domain.Click) error {
	return m.Called(ctx, click).Error(0)
}

func (m *AdRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	var out *domain.Campaign
	if v := args.Get(0); v != nil {
		out = v.(*domain.Campaign)
	}
	return out, args.Error(1)
}

// NominationRepository mocks port.NominationRepository.
type NominationRepository struct{ mock.Mock }

func (m *NominationRepository) Create(ctx context.Context, n *domain.Nomination) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NominationRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Nomination, error) {
	args := m.Called(ctx, id)
	var out *domain.Nomination
	if v := args.Get(0); v != nil {
		out = v.(*domain.Nomination)
	}
	return out, args.Error(1)
}

func (m *NominationRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Nomination, error) {
	args := m.Called(ctx, businessID)
	var out []domain.Nomination
	if v := args.Get(0); v != nil {
		out = v.([]domain.Nomination)
	}
	return out, args.Error(1)
}

func (m *NominationRepository) UpdateStatus(ctx context.Context, upd port.StatusUpdate) error {
	return m.Called(ctx, upd).Error(0)
}

func (m *NominationRepository) AddScore(ctx context.Context, s *domain.Score) (float64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(float64), args.Error(1)
}

func (m *NominationRepository) ListScores(ctx context.Context, nominationID uuid.UUID) ([]domain.Score, error) {
	args := m.Called(ctx, nominationID)
	var out []domain.Score
	if v := args.Get(0); v != nil {
		out = v.([]domain.Score)
	}
	return out, args.Error(1)
}

// UserRepository mocks port.UserRepository.
type UserRepository struct{ mock.Mock }

func (m *UserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	var out *domain.User
	if v := args.Get(0); v != nil {
		out = v.(*domain.User)
	}
	return out, args.Error(1)
}

func (m *UserRepository) ListActiveAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var out []domain.User
	if v := args.Get(0); v != nil {
		out = v.([]domain.User)
	}
	return out, args.Error(1)
}

// Notifier mocks port.Notifier.
type Notifier struct{ mock.Mock }

func (m *Notifier) Notify(ctx context.Context, userID uuid.UUID, title, message, category string, relatedID *uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, userID, title, message, category, relatedID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// AnalyticsRepository mocks port.AnalyticsRepository.
type AnalyticsRepository struct{ mock.Mock }

func (m *AnalyticsRepository) Overview(ctx context.Context) (*port.Overview, error) {
	args := m.Called(ctx)
	var out *port.Overview
	if v := args.Get(0); v != nil {
		out = v.(*port.Overview)
	}
	return out, args.Error(1)
}

func (m *AnalyticsRepository) Trends(ctx context.Context, req port.TrendsRequest) ([]port.TrendPoint, error) {
	args := m.Called(ctx, req)
	var out []port.TrendPoint
	if v := args.Get(0); v != nil {
		out = v.([]port.TrendPoint)
	}
	return out, args.Error(1)
}

// TokenVerifier mocks port.TokenVerifier.
type TokenVerifier struct{ mock.Mock }

func (m *TokenVerifier) Verify(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	var out *domain.User
	if v := args.Get(0); v != nil {
		out = v.(*domain.User)
	}
	return out, args.Error(1)
}

// SessionStore mocks port.SessionStore.
type SessionStore struct{ mock.Mock }

func (m *SessionStore) Exists(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *SessionStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	return m.Called(ctx, token, ttl).Error(0)
}

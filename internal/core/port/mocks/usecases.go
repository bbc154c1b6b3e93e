package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// AdUseCase mocks port.AdUseCase for handler tests.
type AdUseCase struct{ mock.Mock }

func (m *AdUseCase) NextAd(ctx context.Context, placement domain.Placement, exclude []uuid.UUID, session domain.SessionContext) (*port.AdResponse, error) {
	args := m.Called(ctx, placement, exclude, session)
	var out *port.AdResponse
	if v := args.Get(0); v != nil {
		out = v.(*port.AdResponse)
	}
	return out, args.Error(1)
}

func (m *AdUseCase) RecordImpression(ctx context.Context, campaignID uuid.UUID, session domain.SessionContext) (uuid.UUID, error) {
	args := m.Called(ctx, campaignID, session)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *AdUseCase) RecordClick(ctx context.Context, campaignID uuid.UUID, impressionID *uuid.UUID, session domain.SessionContext) (uuid.UUID, error) {
	args := m.Called(ctx, campaignID, impressionID, session)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// NominationUseCase mocks port.NominationUseCase for handler tests.
type NominationUseCase struct{ mock.Mock }

func (m *NominationUseCase) Create(ctx context.Context, businessID uuid.UUID, in port.CreateNominationInput) (*domain.Nomination, error) {
	args := m.Called(ctx, businessID, in)
	var out *domain.Nomination
	if v := args.Get(0); v != nil {
		out = v.(*domain.Nomination)
	}
	return out, args.Error(1)
}

func (m *NominationUseCase) Get(ctx context.Context, id uuid.UUID, caller port.Caller) (*domain.Nomination, error) {
	args := m.Called(ctx, id, caller)
	var out *domain.Nomination
	if v := args.Get(0); v != nil {
		out = v.(*domain.Nomination)
	}
	return out, args.Error(1)
}

func (m *NominationUseCase) ListOwn(ctx context.Context, businessID uuid.UUID) ([]domain.Nomination, error) {
	args := m.Called(ctx, businessID)
	var out []domain.Nomination
	if v := args.Get(0); v != nil {
		out = v.([]domain.Nomination)
	}
	return out, args.Error(1)
}

func (m *NominationUseCase) Submit(ctx context.Context, id, businessID uuid.UUID) (*domain.Nomination, error) {
	args := m.Called(ctx, id, businessID)
	var out *domain.Nomination
	if v := args.Get(0); v != nil {
		out = v.(*domain.Nomination)
	}
	return out, args.Error(1)
}

func (m *NominationUseCase) AddScore(ctx context.Context, id, judgeID uuid.UUID, in port.ScoreInput) (*domain.Score, error) {
	args := m.Called(ctx, id, judgeID, in)
	var out *domain.Score
	if v := args.Get(0); v != nil {
		out = v.(*domain.Score)
	}
	return out, args.Error(1)
}

func (m *NominationUseCase) ListScores(ctx context.Context, id uuid.UUID) ([]domain.Score, error) {
	args := m.Called(ctx, id)
	var out []domain.Score
	if v := args.Get(0); v != nil {
		out = v.([]domain.Score)
	}
	return out, args.Error(1)
}

func (m *NominationUseCase) Transition(ctx context.Context, id uuid.UUID, in port.TransitionInput) (*domain.Nomination, error) {
	args := m.Called(ctx, id, in)
	var out *domain.Nomination
	if v := args.Get(0); v != nil {
		out = v.(*domain.Nomination)
	}
	return out, args.Error(1)
}

// AnalyticsUseCase mocks port.AnalyticsUseCase for handler tests.
type AnalyticsUseCase struct{ mock.Mock }

func (m *AnalyticsUseCase) Overview(ctx context.Context) (*port.Overview, error) {
	args := m.Called(ctx)
	var out *port.Overview
	if v := args.Get(0); v != nil {
		out = v.(*port.Overview)
	}
	return out, args.Error(1)
}

func (m *AnalyticsUseCase) Trends(ctx context.Context, req port.TrendsRequest) ([]port.TrendPoint, error) {
	args := m.Called(ctx, req)
	var out []port.TrendPoint
	if v := args.Get(0); v != nil {
		out = v.([]port.TrendPoint)
	}
	return out, args.Error(1)
}

package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
	"biz-awards/internal/core/port/mocks"
)

func (f *fixture) authAs(token string, role domain.Role) uuid.UUID {
	userID := uuid.New()
	f.tokens.On("Verify", mock.Anything, token).Return(&domain.User{
		ID:       userID,
		Role:     role,
		Status:   domain.UserActive,
		Verified: true,
	}, nil)
	return userID
}

func authedRequest(method, target, token string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestNominationRoutesRequireAuth(t *testing.T) {
	f := newFixture()

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/nominations", strings.NewReader("{}")))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, decodeEnvelope(t, rec).Success)
}

func TestNominationRoutesRejectInvalidToken(t *testing.T) {
	f := newFixture()
	f.tokens.On("Verify", mock.Anything, "bad-token").
		Return(nil, fmt.Errorf("invalid token: %w", port.ErrPermissionDenied))

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/nominations", "bad-token", "{}"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNominationRoutesEnforceRole(t *testing.T) {
	f := newFixture()
	f.authAs("judge-token", domain.RoleJudge)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/nominations", "judge-token", "{}"))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateNomination(t *testing.T) {
	f := newFixture()
	businessID := f.authAs("biz-token", domain.RoleBusiness)

	created := &domain.Nomination{
		ID:         uuid.New(),
		BusinessID: businessID,
		Category:   "Innovation",
		Year:       2026,
		Status:     domain.NominationDraft,
		WinnerTier: domain.TierNone,
	}
	f.noms.On("Create", mock.Anything, businessID, port.CreateNominationInput{
		Category: "Innovation",
		Year:     2026,
	}).Return(created, nil)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/nominations", "biz-token",
		`{"category":"Innovation","year":2026}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	require.True(t, body.Success)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Equal(t, "draft", data["status"])
}

func TestCreateNominationUnverifiedBusiness(t *testing.T) {
	f := newFixture()
	businessID := f.authAs("biz-token", domain.RoleBusiness)
	f.noms.On("Create", mock.Anything, businessID, mock.Anything).
		Return(nil, fmt.Errorf("business account is not verified: %w", port.ErrPermissionDenied))

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/nominations", "biz-token",
		`{"category":"Innovation","year":2026}`))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitNomination(t *testing.T) {
	f := newFixture()
	businessID := f.authAs("biz-token", domain.RoleBusiness)
	id := uuid.New()

	submitted := &domain.Nomination{
		ID:         id,
		BusinessID: businessID,
		Status:     domain.NominationSubmitted,
		WinnerTier: domain.TierNone,
	}
	f.noms.On("Submit", mock.Anything, id, businessID).Return(submitted, nil)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/nominations/"+id.String()+"/submit", "biz-token", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	require.Equal(t, "submitted", data["status"])
}

func TestSubmitNominationTwice(t *testing.T) {
	f := newFixture()
	businessID := f.authAs("biz-token", domain.RoleBusiness)
	id := uuid.New()
	f.noms.On("Submit", mock.Anything, id, businessID).
		Return(nil, fmt.Errorf("cannot submit from status %q: %w", domain.NominationSubmitted, port.ErrInvalidTransition))

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/nominations/"+id.String()+"/submit", "biz-token", ""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, decodeEnvelope(t, rec).Success)
}

func TestJudgeAddsScore(t *testing.T) {
	f := newFixture()
	judgeID := f.authAs("judge-token", domain.RoleJudge)
	id := uuid.New()

	s := &domain.Score{
		ID:           uuid.New(),
		NominationID: id,
		JudgeID:      judgeID,
		Criterion:    "impact",
		Value:        88,
	}
	f.noms.On("AddScore", mock.Anything, id, judgeID, port.ScoreInput{Criterion: "impact", Value: 88}).
		Return(s, nil)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/judge/nominations/"+id.String()+"/scores", "judge-token",
		`{"criterion":"impact","value":88}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, decodeEnvelope(t, rec).Success)
}

func TestJudgeListsScores(t *testing.T) {
	f := newFixture()
	f.authAs("judge-token", domain.RoleJudge)
	id := uuid.New()

	f.noms.On("ListScores", mock.Anything, id).Return([]domain.Score{
		{ID: uuid.New(), NominationID: id, Criterion: "impact", Value: 70},
	}, nil)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/judge/nominations/"+id.String()+"/scores", "judge-token", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var data []map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	require.Len(t, data, 1)
	require.Equal(t, "impact", data[0]["criterion"])
}

func TestAdminTransition(t *testing.T) {
	f := newFixture()
	f.authAs("admin-token", domain.RoleAdmin)
	id := uuid.New()

	updated := &domain.Nomination{
		ID:         id,
		BusinessID: uuid.New(),
		Status:     domain.NominationUnderReview,
		WinnerTier: domain.TierNone,
	}
	f.noms.On("Transition", mock.Anything, id, port.TransitionInput{Status: domain.NominationUnderReview}).
		Return(updated, nil)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/admin/nominations/"+id.String()+"/status", "admin-token",
		`{"status":"under_review"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	require.Equal(t, "under_review", data["status"])
}

func TestAdminTransitionIllegalMove(t *testing.T) {
	f := newFixture()
	f.authAs("admin-token", domain.RoleAdmin)
	id := uuid.New()
	f.noms.On("Transition", mock.Anything, id, mock.Anything).
		Return(nil, fmt.Errorf("cannot move %q to %q: %w",
			domain.NominationSubmitted, domain.NominationWinner, port.ErrInvalidTransition))

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/admin/nominations/"+id.String()+"/status", "admin-token",
		`{"status":"winner"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, decodeEnvelope(t, rec).Success)
}

func TestAdminRoutesRejectBusinessRole(t *testing.T) {
	f := newFixture()
	f.authAs("biz-token", domain.RoleBusiness)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/admin/analytics/overview", "biz-token", ""))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAnalyticsOverview(t *testing.T) {
	f := newFixture()
	f.authAs("admin-token", domain.RoleAdmin)

	f.analytics.On("Overview", mock.Anything).Return(&port.Overview{
		NominationsByStatus: map[string]int64{"submitted": 4},
		TotalImpressions:    120,
		TotalClicks:         9,
	}, nil)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/admin/analytics/overview", "admin-token", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	require.EqualValues(t, 120, data["total_impressions"])
}

func TestAnalyticsTrendsValidatesParams(t *testing.T) {
	f := newFixture()
	f.authAs("admin-token", domain.RoleAdmin)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/admin/analytics/trends?days=zero", "admin-token", ""))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/admin/analytics/trends?campaign_id=nope", "admin-token", ""))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsTrendsPassesWindow(t *testing.T) {
	f := newFixture()
	f.authAs("admin-token", domain.RoleAdmin)
	campaignID := uuid.New()

	f.analytics.On("Trends", mock.Anything, mock.MatchedBy(func(req port.TrendsRequest) bool {
		return req.Days == 7 && req.CampaignID != nil && *req.CampaignID == campaignID
	})).Return([]port.TrendPoint{}, nil)

	rec := httptest.NewRecorder()
	target := "/api/admin/analytics/trends?days=7&campaign_id=" + campaignID.String()
	f.handler.ServeHTTP(rec, authedRequest(http.MethodGet, target, "admin-token", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	f.analytics.AssertExpectations(t)
}

// ensure the usecase-facing mocks satisfy the ports this package wires
var (
	_ port.AdUseCase         = (*mocks.AdUseCase)(nil)
	_ port.NominationUseCase = (*mocks.NominationUseCase)(nil)
	_ port.AnalyticsUseCase  = (*mocks.AnalyticsUseCase)(nil)
	_ port.SessionStore      = (*mocks.SessionStore)(nil)
	_ port.TokenVerifier     = (*mocks.TokenVerifier)(nil)
)

package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
	"biz-awards/internal/core/port/mocks"
)

type nominationFixture struct {
	repo     *mocks.NominationRepository
	users    *mocks.UserRepository
	notifier *mocks.Notifier
	svc      *NominationUseCase
}

func newNominationFixture() *nominationFixture {
	f := &nominationFixture{
		repo:     new(mocks.NominationRepository),
		users:    new(mocks.UserRepository),
		notifier: new(mocks.Notifier),
	}
	f.svc = NewNominationUseCase(f.repo, f.users, f.notifier, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func businessUser(verified bool) *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Role:     domain.RoleBusiness,
		Status:   domain.UserActive,
		Verified: verified,
	}
}

func draftNomination(businessID uuid.UUID) *domain.Nomination {
	return &domain.Nomination{
		ID:         uuid.New(),
		BusinessID: businessID,
		Category:   "Innovation",
		Year:       2026,
		Status:     domain.NominationDraft,
		WinnerTier: domain.TierNone,
		Version:    1,
	}
}

func validInput() port.CreateNominationInput {
	return port.CreateNominationInput{Category: "Innovation", Year: 2026}
}

func TestCreateRequiresVerifiedBusiness(t *testing.T) {
	f := newNominationFixture()
	user := businessUser(false)
	f.users.On("Get", mock.Anything, user.ID).Return(user, nil)

	_, err := f.svc.Create(context.Background(), user.ID, validInput())
	require.ErrorIs(t, err, port.ErrPermissionDenied)
}

func TestCreateRejectsNonBusinessRole(t *testing.T) {
	f := newNominationFixture()
	admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin, Verified: true}
	f.users.On("Get", mock.Anything, admin.ID).Return(admin, nil)

	_, err := f.svc.Create(context.Background(), admin.ID, validInput())
	require.ErrorIs(t, err, port.ErrPermissionDenied)
}

func TestCreateStartsInDraft(t *testing.T) {
	f := newNominationFixture()
	user := businessUser(true)
	f.users.On("Get", mock.Anything, user.ID).Return(user, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Nomination")).Return(nil)

	n, err := f.svc.Create(context.Background(), user.ID, validInput())
	require.NoError(t, err)
	require.Equal(t, domain.NominationDraft, n.Status)
	require.Equal(t, domain.TierNone, n.WinnerTier)
	require.Equal(t, user.ID, n.BusinessID)
	require.EqualValues(t, 1, n.Version)
}

func TestCreateValidatesPayload(t *testing.T) {
	f := newNominationFixture()
	user := businessUser(true)
	f.users.On("Get", mock.Anything, user.ID).Return(user, nil)

	in := validInput()
	in.Category = ""
	_, err := f.svc.Create(context.Background(), user.ID, in)
	require.ErrorIs(t, err, port.ErrValidation)

	in = validInput()
	in.Year = 1987
	_, err = f.svc.Create(context.Background(), user.ID, in)
	require.ErrorIs(t, err, port.ErrValidation)
}

func TestSubmitStampsAndNotifies(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	admins := []domain.User{
		{ID: uuid.New(), Role: domain.RoleAdmin, Status: domain.UserActive},
		{ID: uuid.New(), Role: domain.RoleAdmin, Status: domain.UserActive},
	}

	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)
	f.repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(upd port.StatusUpdate) bool {
		return upd.ID == n.ID &&
			upd.FromStatus == domain.NominationDraft &&
			upd.FromVersion == 1 &&
			upd.ToStatus == domain.NominationSubmitted
	})).Return(nil)
	f.users.On("ListActiveAdmins", mock.Anything).Return(admins, nil)
	f.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "nomination", mock.Anything).
		Return(uuid.New(), nil)

	out, err := f.svc.Submit(context.Background(), n.ID, n.BusinessID)
	require.NoError(t, err)
	require.Equal(t, domain.NominationSubmitted, out.Status)
	require.NotNil(t, out.SubmittedAt)
	require.EqualValues(t, 2, out.Version)

	// one confirmation to the business plus one alert per active admin
	f.notifier.AssertNumberOfCalls(t, "Notify", 1+len(admins))
	f.notifier.AssertCalled(t, "Notify", mock.Anything, n.BusinessID, mock.Anything, mock.Anything, "nomination", mock.Anything)
	for _, admin := range admins {
		f.notifier.AssertCalled(t, "Notify", mock.Anything, admin.ID, mock.Anything, mock.Anything, "nomination", mock.Anything)
	}
}

func TestSubmitTwiceIsInvalidTransition(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	n.Status = domain.NominationSubmitted // first submit already happened

	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)

	_, err := f.svc.Submit(context.Background(), n.ID, n.BusinessID)
	require.ErrorIs(t, err, port.ErrInvalidTransition)
	f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitByNonOwnerIsForbidden(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)

	_, err := f.svc.Submit(context.Background(), n.ID, uuid.New())
	require.ErrorIs(t, err, port.ErrPermissionDenied)
}

func TestSubmitLostRaceReportsInvalidTransition(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())

	// the guarded update loses the race; a re-read sees the new status
	submitted := *n
	submitted.Status = domain.NominationSubmitted
	submitted.Version = 2

	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, mock.Anything).Return(port.ErrConflict)
	f.repo.On("Get", mock.Anything, n.ID).Return(&submitted, nil).Once()

	_, err := f.svc.Submit(context.Background(), n.ID, n.BusinessID)
	require.ErrorIs(t, err, port.ErrInvalidTransition)
}

func TestSubmitSucceedsWhenNotifierIsDown(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())

	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)
	f.repo.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil)
	f.users.On("ListActiveAdmins", mock.Anything).Return([]domain.User{}, nil)
	f.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(uuid.Nil, context.DeadlineExceeded)

	out, err := f.svc.Submit(context.Background(), n.ID, n.BusinessID)
	require.NoError(t, err, "notification failure must never fail the transition")
	require.Equal(t, domain.NominationSubmitted, out.Status)
}

func TestAddScoreValidatesRange(t *testing.T) {
	f := newNominationFixture()

	_, err := f.svc.AddScore(context.Background(), uuid.New(), uuid.New(), port.ScoreInput{Criterion: "impact", Value: 101})
	require.ErrorIs(t, err, port.ErrValidation)

	_, err = f.svc.AddScore(context.Background(), uuid.New(), uuid.New(), port.ScoreInput{Criterion: "impact", Value: -1})
	require.ErrorIs(t, err, port.ErrValidation)

	_, err = f.svc.AddScore(context.Background(), uuid.New(), uuid.New(), port.ScoreInput{Value: 50})
	require.ErrorIs(t, err, port.ErrValidation)
}

func TestAddScoreOnlyWhileReviewable(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	n.Status = domain.NominationShortlisted
	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)

	_, err := f.svc.AddScore(context.Background(), n.ID, uuid.New(), port.ScoreInput{Criterion: "impact", Value: 80})
	require.ErrorIs(t, err, port.ErrInvalidTransition)
}

func TestAddScoreAppendsScore(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	n.Status = domain.NominationUnderReview
	judgeID := uuid.New()

	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)
	f.repo.On("AddScore", mock.Anything, mock.MatchedBy(func(s *domain.Score) bool {
		return s.NominationID == n.ID && s.JudgeID == judgeID && s.Criterion == "impact" && s.Value == 80
	})).Return(float64(80), nil)

	s, err := f.svc.AddScore(context.Background(), n.ID, judgeID, port.ScoreInput{Criterion: "impact", Value: 80})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, s.ID)
	f.repo.AssertExpectations(t)
}

// scoreLedger is a stateful stand-in for the persistence contract of
// AddScore: the average it maintains is always the arithmetic mean of
// every stored score, the way the SQL recompute derives it.
type scoreLedger struct {
	nomination domain.Nomination
	scores     []domain.Score
}

func (l *scoreLedger) Create(context.Context, *domain.Nomination) error { return nil }

func (l *scoreLedger) Get(context.Context, uuid.UUID) (*domain.Nomination, error) {
	n := l.nomination
	return &n, nil
}

func (l *scoreLedger) ListByBusiness(context.Context, uuid.UUID) ([]domain.Nomination, error) {
	return nil, nil
}

func (l *scoreLedger) UpdateStatus(context.Context, port.StatusUpdate) error { return nil }

func (l *scoreLedger) AddScore(_ context.Context, s *domain.Score) (float64, error) {
	for _, existing := range l.scores {
		if existing.JudgeID == s.JudgeID && existing.Criterion == s.Criterion {
			return 0, port.ErrConflict
		}
	}
	l.scores = append(l.scores, *s)
	var sum float64
	for _, sc := range l.scores {
		sum += sc.Value
	}
	l.nomination.AverageScore = sum / float64(len(l.scores))
	return l.nomination.AverageScore, nil
}

func (l *scoreLedger) ListScores(context.Context, uuid.UUID) ([]domain.Score, error) {
	return append([]domain.Score(nil), l.scores...), nil
}

func TestAddScoreMaintainsRunningAverage(t *testing.T) {
	ledger := &scoreLedger{nomination: domain.Nomination{
		ID:     uuid.New(),
		Status: domain.NominationUnderReview,
	}}
	svc := NewNominationUseCase(ledger, new(mocks.UserRepository), new(mocks.Notifier), slog.New(slog.NewTextHandler(io.Discard, nil)))

	values := []float64{40, 90, 65, 100, 0}
	var sum float64
	for i, v := range values {
		_, err := svc.AddScore(context.Background(), ledger.nomination.ID, uuid.New(),
			port.ScoreInput{Criterion: "impact", Value: v})
		require.NoError(t, err)

		sum += v
		require.Len(t, ledger.scores, i+1, "every accepted score must widen the average's basis")
		require.InDelta(t, sum/float64(i+1), ledger.nomination.AverageScore, 1e-9)
	}
}

func TestAddScoreDuplicateCriterionKeepsAverage(t *testing.T) {
	ledger := &scoreLedger{nomination: domain.Nomination{
		ID:     uuid.New(),
		Status: domain.NominationSubmitted,
	}}
	svc := NewNominationUseCase(ledger, new(mocks.UserRepository), new(mocks.Notifier), slog.New(slog.NewTextHandler(io.Discard, nil)))
	judgeID := uuid.New()

	_, err := svc.AddScore(context.Background(), ledger.nomination.ID, judgeID,
		port.ScoreInput{Criterion: "impact", Value: 60})
	require.NoError(t, err)

	_, err = svc.AddScore(context.Background(), ledger.nomination.ID, judgeID,
		port.ScoreInput{Criterion: "impact", Value: 100})
	require.ErrorIs(t, err, port.ErrConflict)
	require.Len(t, ledger.scores, 1, "a rejected duplicate must not touch the stored facts")
	require.InDelta(t, 60.0, ledger.nomination.AverageScore, 1e-9)
}

func TestListScoresUnknownNomination(t *testing.T) {
	f := newNominationFixture()
	id := uuid.New()
	f.repo.On("Get", mock.Anything, id).Return(nil, port.ErrNotFound)

	_, err := f.svc.ListScores(context.Background(), id)
	require.ErrorIs(t, err, port.ErrNotFound)
	f.repo.AssertNotCalled(t, "ListScores", mock.Anything, mock.Anything)
}

func TestListScoresReturnsAll(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	n.Status = domain.NominationUnderReview
	scores := []domain.Score{
		{ID: uuid.New(), NominationID: n.ID, Criterion: "impact", Value: 70},
		{ID: uuid.New(), NominationID: n.ID, Criterion: "innovation", Value: 85},
	}
	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)
	f.repo.On("ListScores", mock.Anything, n.ID).Return(scores, nil)

	got, err := f.svc.ListScores(context.Background(), n.ID)
	require.NoError(t, err)
	require.Equal(t, scores, got)
}

func TestTransitionRejectsStageSkip(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	n.Status = domain.NominationSubmitted
	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)

	_, err := f.svc.Transition(context.Background(), n.ID, port.TransitionInput{Status: domain.NominationWinner})
	require.ErrorIs(t, err, port.ErrInvalidTransition)
	f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	f := newNominationFixture()
	_, err := f.svc.Transition(context.Background(), uuid.New(), port.TransitionInput{Status: "approved"})
	require.ErrorIs(t, err, port.ErrValidation)
}

func TestTransitionToUnderReviewStampsTimeline(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	n.Status = domain.NominationSubmitted
	now := time.Now()
	n.SubmittedAt = &now

	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)
	f.repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(upd port.StatusUpdate) bool {
		return upd.FromStatus == domain.NominationSubmitted && upd.ToStatus == domain.NominationUnderReview
	})).Return(nil)

	out, err := f.svc.Transition(context.Background(), n.ID, port.TransitionInput{Status: domain.NominationUnderReview})
	require.NoError(t, err)
	require.Equal(t, domain.NominationUnderReview, out.Status)
	require.NotNil(t, out.ReviewedAt)
	// no notification on this transition
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionToShortlistedNotifiesBusiness(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	n.Status = domain.NominationUnderReview

	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)
	f.repo.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("Notify", mock.Anything, n.BusinessID, mock.Anything, mock.Anything, "nomination", mock.Anything).
		Return(uuid.New(), nil)

	out, err := f.svc.Transition(context.Background(), n.ID, port.TransitionInput{Status: domain.NominationShortlisted})
	require.NoError(t, err)
	require.NotNil(t, out.ShortlistedAt)
	f.notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestTransitionToWinnerSetsTier(t *testing.T) {
	f := newNominationFixture()
	n := draftNomination(uuid.New())
	n.Status = domain.NominationFinalist
	tier := domain.TierGold

	f.repo.On("Get", mock.Anything, n.ID).Return(n, nil)
	f.repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(upd port.StatusUpdate) bool {
		return upd.ToStatus == domain.NominationWinner && upd.WinnerTier != nil && *upd.WinnerTier == tier
	})).Return(nil)
	f.notifier.On("Notify", mock.Anything, n.BusinessID, mock.Anything, mock.Anything, "nomination", mock.Anything).
		Return(uuid.New(), nil)

	out, err := f.svc.Transition(context.Background(), n.ID, port.TransitionInput{Status: domain.NominationWinner, WinnerTier: &tier})
	require.NoError(t, err)
	require.Equal(t, tier, out.WinnerTier)
	require.NotNil(t, out.AwardedAt)
}

func TestTransitionTierOutsideAwardIsRejected(t *testing.T) {
	f := newNominationFixture()
	tier := domain.TierSilver
	_, err := f.svc.Transition(context.Background(), uuid.New(), port.TransitionInput{
		Status:     domain.NominationShortlisted,
		WinnerTier: &tier,
	})
	require.ErrorIs(t, err, port.ErrValidation)
}

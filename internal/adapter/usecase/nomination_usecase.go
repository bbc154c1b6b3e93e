package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// NominationUseCase drives the nomination lifecycle state machine. All
// transitions are guarded by the repository's optimistic version check;
// notification failures are logged and never fail the transition.
type NominationUseCase struct {
	repo     port.NominationRepository
	users    port.UserRepository
	notifier port.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewNominationUseCase creates a new usecase.
func NewNominationUseCase(repo port.NominationRepository, users port.UserRepository, notifier port.Notifier, logger *slog.Logger) *NominationUseCase {
	return &NominationUseCase{
		repo:     repo,
		users:    users,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Create starts a new draft nomination. Only verified business accounts
// may enter the award cycle.
func (u *NominationUseCase) Create(ctx context.Context, businessID uuid.UUID, in port.CreateNominationInput) (*domain.Nomination, error) {
	user, err := u.users.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleBusiness {
		return nil, fmt.Errorf("only business accounts may nominate: %w", port.ErrPermissionDenied)
	}
	if !user.Verified {
		return nil, fmt.Errorf("business account is not verified: %w", port.ErrPermissionDenied)
	}
	if in.Category == "" {
		return nil, fmt.Errorf("category is required: %w", port.ErrValidation)
	}
	if in.Year < 2000 || in.Year > u.now().Year()+1 {
		return nil, fmt.Errorf("year %d out of range: %w", in.Year, port.ErrValidation)
	}

	n := &domain.Nomination{
		ID:          uuid.New(),
		BusinessID:  businessID,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Year:        in.Year,
		Content:     in.Content,
		Documents:   in.Documents,
		Status:      domain.NominationDraft,
		WinnerTier:  domain.TierNone,
		Version:     1,
	}
	if err := u.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Get returns a nomination visible to the caller. Businesses only see
// their own; admins, judges and moderators see all.
func (u *NominationUseCase) Get(ctx context.Context, id uuid.UUID, caller port.Caller) (*domain.Nomination, error) {
	n, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleBusiness && n.BusinessID != caller.UserID {
		return nil, fmt.Errorf("nomination belongs to another business: %w", port.ErrPermissionDenied)
	}
	return n, nil
}

// ListOwn returns the caller's nominations, newest first.
func (u *NominationUseCase) ListOwn(ctx context.Context, businessID uuid.UUID) ([]domain.Nomination, error) {
	return u.repo.ListByBusiness(ctx, businessID)
}

// Submit moves an owned draft to submitted. On success the business gets
// a confirmation notice and every active admin a new-submission alert.
func (u *NominationUseCase) Submit(ctx context.Context, id, businessID uuid.UUID) (*domain.Nomination, error) {
	n, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.BusinessID != businessID {
		return nil, fmt.Errorf("nomination belongs to another business: %w", port.ErrPermissionDenied)
	}
	if n.Status != domain.NominationDraft {
		return nil, fmt.Errorf("cannot submit from status %q: %w", n.Status, port.ErrInvalidTransition)
	}

	now := u.now().UTC()
	err = u.repo.UpdateStatus(ctx, port.StatusUpdate{
		ID:          id,
		FromStatus:  domain.NominationDraft,
		FromVersion: n.Version,
		ToStatus:    domain.NominationSubmitted,
		Now:         now,
	})
	if err != nil {
		return nil, u.remapConflict(ctx, id, err)
	}

	n.Status = domain.NominationSubmitted
	n.SubmittedAt = &now
	n.Version++
	n.UpdatedAt = now

	u.notify(ctx, businessID, "Nomination submitted",
		fmt.Sprintf("Your %d nomination in %s has been received and is awaiting review.", n.Year, n.Category),
		"nomination", id)

	admins, err := u.users.ListActiveAdmins(ctx)
	if err != nil {
		u.logger.Error("listing admins for submission alert", slog.Any("error", err))
		return n, nil
	}
	for _, admin := range admins {
		u.notify(ctx, admin.ID, "New nomination submitted",
			fmt.Sprintf("A new nomination was submitted in %s for %d.", n.Category, n.Year),
			"nomination", id)
	}
	return n, nil
}

// AddScore records one judge evaluation and refreshes the running
// average. Scoring is open only while the nomination is submitted or
// under review.
func (u *NominationUseCase) AddScore(ctx context.Context, id, judgeID uuid.UUID, in port.ScoreInput) (*domain.Score, error) {
	if in.Criterion == "" {
		return nil, fmt.Errorf("criterion is required: %w", port.ErrValidation)
	}
	if in.Value < 0 || in.Value > 100 {
		return nil, fmt.Errorf("score %v outside [0,100]: %w", in.Value, port.ErrValidation)
	}

	n, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.Scorable(n.Status) {
		return nil, fmt.Errorf("cannot score in status %q: %w", n.Status, port.ErrInvalidTransition)
	}

	s := &domain.Score{
		ID:           uuid.New(),
		NominationID: id,
		JudgeID:      judgeID,
		Criterion:    in.Criterion,
		Value:        in.Value,
		Comments:     in.Comments,
	}
	if _, err := u.repo.AddScore(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListScores returns every score recorded for a nomination, oldest
// first.
func (u *NominationUseCase) ListScores(ctx context.Context, id uuid.UUID) ([]domain.Score, error) {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return u.repo.ListScores(ctx, id)
}

// Transition applies an admin status change along the legal graph. The
// business is notified when its nomination is shortlisted or wins.
func (u *NominationUseCase) Transition(ctx context.Context, id uuid.UUID, in port.TransitionInput) (*domain.Nomination, error) {
	if !domain.ValidNominationStatus(in.Status) {
		return nil, fmt.Errorf("unknown status %q: %w", in.Status, port.ErrValidation)
	}
	if in.WinnerTier != nil && in.Status != domain.NominationWinner {
		return nil, fmt.Errorf("winner_tier applies only when awarding: %w", port.ErrValidation)
	}

	n, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(n.Status, in.Status) {
		return nil, fmt.Errorf("cannot move %q to %q: %w", n.Status, in.Status, port.ErrInvalidTransition)
	}

	now := u.now().UTC()
	err = u.repo.UpdateStatus(ctx, port.StatusUpdate{
		ID:          id,
		FromStatus:  n.Status,
		FromVersion: n.Version,
		ToStatus:    in.Status,
		Feedback:    in.Feedback,
		WinnerTier:  in.WinnerTier,
		Now:         now,
	})
	if err != nil {
		return nil, u.remapConflict(ctx, id, err)
	}

	n.Status = in.Status
	n.Version++
	n.UpdatedAt = now
	if in.Feedback != nil {
		n.Feedback = *in.Feedback
	}
	if in.WinnerTier != nil {
		n.WinnerTier = *in.WinnerTier
	}
	switch in.Status {
	case domain.NominationUnderReview:
		n.ReviewedAt = &now
	case domain.NominationShortlisted:
		n.ShortlistedAt = &now
		u.notify(ctx, n.BusinessID, "You have been shortlisted",
			fmt.Sprintf("Your %d nomination in %s made the shortlist.", n.Year, n.Category),
			"nomination", id)
	case domain.NominationWinner:
		n.AwardedAt = &now
		u.notify(ctx, n.BusinessID, "Congratulations, you won",
			fmt.Sprintf("Your %d nomination in %s has been named a winner.", n.Year, n.Category),
			"nomination", id)
	}
	return n, nil
}

// remapConflict distinguishes a lost race from a plainly illegal move:
// when the guarded update matched no rows, the nomination is re-read and
// a changed status reports ErrInvalidTransition just like a sequential
// caller would have seen.
func (u *NominationUseCase) remapConflict(ctx context.Context, id uuid.UUID, err error) error {
	if !errors.Is(err, port.ErrConflict) {
		return err
	}
	current, getErr := u.repo.Get(ctx, id)
	if getErr != nil {
		return err
	}
	return fmt.Errorf("status changed concurrently to %q: %w", current.Status, port.ErrInvalidTransition)
}

// notify is fire-and-forget: dispatch failures are logged, never
// propagated to the triggering transition.
func (u *NominationUseCase) notify(ctx context.Context, userID uuid.UUID, title, message, category string, relatedID uuid.UUID) {
	if _, err := u.notifier.Notify(ctx, userID, title, message, category, &relatedID); err != nil {
		u.logger.Error("notification dispatch failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}
}

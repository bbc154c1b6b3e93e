package port

import (
	"context"

	"github.com/google/uuid"

	"biz-awards/internal/core/domain"
)

// Caller identifies the authenticated account performing an operation.
type Caller struct {
	UserID uuid.UUID
	Role   domain.Role
}

// CreateNominationInput is the payload for a new draft nomination.
type CreateNominationInput struct {
	Category    string                   `json:"category"`
	Subcategory string                   `json:"subcategory"`
	Year        int                      `json:"year"`
	Content     domain.NominationContent `json:"content"`
	Documents   []string                 `json:"documents"`
}

// ScoreInput is one judge evaluation of a nomination criterion.
type ScoreInput struct {
	Criterion string  `json:"criterion"`
	Value     float64 `json:"value"`
	Comments  string  `json:"comments"`
}

// TransitionInput is an admin-driven status change request.
type TransitionInput struct {
	Status     domain.NominationStatus `json:"status"`
	Feedback   *string                 `json:"feedback,omitempty"`
	WinnerTier *domain.WinnerTier      `json:"winner_tier,omitempty"`
}

// NominationUseCase defines the nomination lifecycle operations.
type NominationUseCase interface {
	// Create starts a new draft nomination for a verified business.
	// Unverified accounts get ErrPermissionDenied.
	Create(ctx context.Context, businessID uuid.UUID, in CreateNominationInput) (*domain.Nomination, error)

	// Get returns a nomination visible to the caller: owners see their
	// own, admins and judges see all.
	Get(ctx context.Context, id uuid.UUID, caller Caller) (*domain.Nomination, error)

	// ListOwn returns the caller's nominations, newest first.
	ListOwn(ctx context.Context, businessID uuid.UUID) ([]domain.Nomination, error)

	// Submit moves an owned draft nomination to submitted, stamps
	// submitted_at and notifies the business and every active admin.
	Submit(ctx context.Context, id, businessID uuid.UUID) (*domain.Nomination, error)

	// AddScore records a judge score while the nomination is submitted
	// or under review, and refreshes the running average.
	AddScore(ctx context.Context, id, judgeID uuid.UUID, in ScoreInput) (*domain.Score, error)

	// ListScores returns all scores recorded for a nomination, oldest
	// first.
	ListScores(ctx context.Context, id uuid.UUID) ([]domain.Score, error)

	// Transition applies an admin status change along the legal state
	// graph, notifying the business on shortlisted and winner.
	Transition(ctx context.Context, id uuid.UUID, in TransitionInput) (*domain.Nomination, error)
}

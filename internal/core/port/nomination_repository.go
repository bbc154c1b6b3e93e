package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"biz-awards/internal/core/domain"
)

// StatusUpdate describes one guarded nomination transition. FromStatus
// and FromVersion are the state the caller observed; the repository
// applies the update only if the row still matches both, which makes the
// predecessor check race-free.
type StatusUpdate struct {
	ID          uuid.UUID
	FromStatus  domain.NominationStatus
	FromVersion int64
	ToStatus    domain.NominationStatus
	Feedback    *string
	WinnerTier  *domain.WinnerTier
	Now         time.Time
}

// NominationRepository is the outbound persistence port for the
// nomination state machine.
type NominationRepository interface {
	// Create inserts a new nomination in draft status.
	Create(ctx context.Context, n *domain.Nomination) error

	// Get returns a nomination by id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Nomination, error)

	// ListByBusiness returns the nominations owned by a business,
	// newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Nomination, error)

	// UpdateStatus applies a guarded transition, stamping the timeline
	// field matching ToStatus and incrementing the version. Returns
	// ErrConflict when the row no longer matches FromStatus/FromVersion.
	UpdateStatus(ctx context.Context, upd StatusUpdate) error

	// AddScore inserts a score and recomputes the nomination's average
	// from all stored scores in the same transaction. Returns the new
	// average, ErrNotFound for an unknown nomination, or ErrConflict
	// when the judge already scored this criterion.
	AddScore(ctx context.Context, s *domain.Score) (float64, error)

	// ListScores returns all scores for a nomination, oldest first.
	ListScores(ctx context.Context, nominationID uuid.UUID) ([]domain.Score, error)
}

// UserRepository resolves platform accounts for permission checks and
// notification fan-out.
type UserRepository interface {
	// Get returns a user by id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// ListActiveAdmins returns every admin account with active status.
	ListActiveAdmins(ctx context.Context) ([]domain.User, error)
}

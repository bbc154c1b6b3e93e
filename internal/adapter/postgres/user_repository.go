package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// UserRepository implements port.UserRepository and port.TokenVerifier
// on pgxpool. The auth_tokens table realizes the external auth
// collaborator contract: token in, user id and role out.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Status, &u.Verified, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Get returns a user by id.
func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, email, name, role, status, verified, created_at, updated_at
        FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectOneRow(rows, scanUser)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListActiveAdmins returns every admin account with active status.
func (r *UserRepository) ListActiveAdmins(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, email, name, role, status, verified, created_at, updated_at
        FROM users
        WHERE role = 'admin' AND status = 'active'`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanUser)
}

// Verify resolves a bearer token to its account. Expired or unknown
// tokens are indistinguishable to the caller.
func (r *UserRepository) Verify(ctx context.Context, token string) (*domain.User, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT u.id, u.email, u.name, u.role, u.status, u.verified, u.created_at, u.updated_at
        FROM auth_tokens t
        JOIN users u ON u.id = t.user_id
        WHERE t.token = $1 AND t.expires_at > now()`, token)
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectOneRow(rows, scanUser)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("invalid token: %w", port.ErrPermissionDenied)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

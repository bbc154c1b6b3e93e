package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// NominationRepository implements port.NominationRepository on pgxpool.
type NominationRepository struct {
	pool *pgxpool.Pool
}

// NewNominationRepository returns a new repository instance.
func NewNominationRepository(pool *pgxpool.Pool) *NominationRepository {
	return &NominationRepository{pool: pool}
}

const nominationColumns = `
    id, business_id, category, subcategory, year, content, documents,
    status, average_score, feedback, winner_tier,
    submitted_at, reviewed_at, shortlisted_at, awarded_at,
    version, created_at, updated_at`

func scanNomination(row pgx.CollectableRow) (domain.Nomination, error) {
	var (
		n            domain.Nomination
		contentRaw   []byte
		documentsRaw []byte
	)
	err := row.Scan(
		&n.ID, &n.BusinessID, &n.Category, &n.Subcategory, &n.Year, &contentRaw, &documentsRaw,
		&n.Status, &n.AverageScore, &n.Feedback, &n.WinnerTier,
		&n.SubmittedAt, &n.ReviewedAt, &n.ShortlistedAt, &n.AwardedAt,
		&n.Version, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return n, err
	}
	if len(contentRaw) > 0 {
		if err = json.Unmarshal(contentRaw, &n.Content); err != nil {
			return n, fmt.Errorf("decode content: %w", err)
		}
	}
	if len(documentsRaw) > 0 {
		if err = json.Unmarshal(documentsRaw, &n.Documents); err != nil {
			return n, fmt.Errorf("decode documents: %w", err)
		}
	}
	return n, nil
}

// Create inserts a new draft nomination.
func (r *NominationRepository) Create(ctx context.Context, n *domain.Nomination) error {
	contentRaw, err := json.Marshal(n.Content)
	if err != nil {
		return err
	}
	docs := n.Documents
	if docs == nil {
		docs = []string{}
	}
	documentsRaw, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now
	_, err = r.pool.Exec(ctx, `
        INSERT INTO nominations
            (id, business_id, category, subcategory, year, content, documents,
             status, average_score, feedback, winner_tier, version, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,'',$9,1,$10,$10)`,
		n.ID, n.BusinessID, n.Category, n.Subcategory, n.Year, contentRaw, documentsRaw,
		n.Status, n.WinnerTier, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("business %s: %w", n.BusinessID, port.ErrNotFound)
		}
		return fmt.Errorf("create nomination: %w", err)
	}
	return nil
}

// Get returns a nomination by id.
func (r *NominationRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Nomination, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+nominationColumns+` FROM nominations WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	n, err := pgx.CollectOneRow(rows, scanNomination)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("nomination %s: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByBusiness returns a business's nominations, newest first.
func (r *NominationRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Nomination, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+nominationColumns+`
        FROM nominations
        WHERE business_id = $1
        ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanNomination)
}

// timelineColumn maps a target status to the timeline field it stamps.
// Statuses without a dedicated column stamp nothing extra.
func timelineColumn(to domain.NominationStatus) string {
	switch to {
	case domain.NominationSubmitted:
		return "submitted_at"
	case domain.NominationUnderReview:
		return "reviewed_at"
	case domain.NominationShortlisted:
		return "shortlisted_at"
	case domain.NominationWinner:
		return "awarded_at"
	}
	return ""
}

// UpdateStatus applies one guarded transition. The WHERE clause re-checks
// the observed status and version, so two racing transitions cannot both
// pass the predecessor check: the loser matches zero rows and gets
// ErrConflict.
func (r *NominationRepository) UpdateStatus(ctx context.Context, upd port.StatusUpdate) error {
	query := `
        UPDATE nominations
        SET status = $1, version = version + 1, updated_at = $2`
	args := []any{upd.ToStatus, upd.Now}
	idx := 3
	if col := timelineColumn(upd.ToStatus); col != "" {
		query += fmt.Sprintf(", %s = $2", col)
	}
	if upd.Feedback != nil {
		query += fmt.Sprintf(", feedback = $%d", idx)
		args = append(args, *upd.Feedback)
		idx++
	}
	if upd.WinnerTier != nil {
		query += fmt.Sprintf(", winner_tier = $%d", idx)
		args = append(args, *upd.WinnerTier)
		idx++
	}
	query += fmt.Sprintf(" WHERE id = $%d AND status = $%d AND version = $%d", idx, idx+1, idx+2)
	args = append(args, upd.ID, upd.FromStatus, upd.FromVersion)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("nomination %s version %d: %w", upd.ID, upd.FromVersion, port.ErrConflict)
	}
	return nil
}

// AddScore inserts the score and recomputes the nomination average from
// all stored scores in the same transaction, so the average never drifts
// from the facts it is derived from.
func (r *NominationRepository) AddScore(ctx context.Context, s *domain.Score) (float64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	s.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `
        INSERT INTO scores (id, nomination_id, judge_id, criterion, value, comments, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.NominationID, s.JudgeID, s.Criterion, s.Value, s.Comments, s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				err = fmt.Errorf("criterion %q already scored: %w", s.Criterion, port.ErrConflict)
			case pgForeignKeyViolation:
				err = fmt.Errorf("nomination %s: %w", s.NominationID, port.ErrNotFound)
			}
		}
		return 0, err
	}

	var avg float64
	err = tx.QueryRow(ctx, `
        UPDATE nominations
        SET average_score = (SELECT AVG(value) FROM scores WHERE nomination_id = $1),
            updated_at = now()
        WHERE id = $1
        RETURNING average_score`, s.NominationID).Scan(&avg)
	if err != nil {
		return 0, err
	}
	return avg, nil
}

// ListScores returns all scores for a nomination, oldest first.
func (r *NominationRepository) ListScores(ctx context.Context, nominationID uuid.UUID) ([]domain.Score, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, nomination_id, judge_id, criterion, value, comments, created_at
        FROM scores
        WHERE nomination_id = $1
        ORDER BY created_at`, nominationID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Score, error) {
		var sc domain.Score
		err := row.Scan(&sc.ID, &sc.NominationID, &sc.JudgeID, &sc.Criterion, &sc.Value, &sc.Comments, &sc.CreatedAt)
		return sc, err
	})
}

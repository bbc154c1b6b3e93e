package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Notifier implements port.Notifier by inserting in-app notices into the
// notifications table.
type Notifier struct {
	pool *pgxpool.Pool
}

// NewNotifier returns a new notifier instance.
func NewNotifier(pool *pgxpool.Pool) *Notifier {
	return &Notifier{pool: pool}
}

// Notify stores one notification and returns its id.
func (n *Notifier) Notify(ctx context.Context, userID uuid.UUID, title, message, category string, relatedID *uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := n.pool.Exec(ctx, `
        INSERT INTO notifications (id, user_id, title, message, category, related_id, read, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,false,$7)`,
		id, userID, title, message, category, relatedID, time.Now().UTC())
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

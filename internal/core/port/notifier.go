package port

import (
	"context"

	"github.com/google/uuid"
)

// Notifier is the outbound port for in-app notices. Callers treat it as
// fire-and-forget: a failed Notify is logged and never fails the state
// transition that triggered it.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message, category string, relatedID *uuid.UUID) (uuid.UUID, error)
}

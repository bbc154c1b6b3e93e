package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notice delivered to one user, created as a
// side effect of nomination state transitions.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Category  string
	RelatedID *uuid.UUID
	Read      bool
	CreatedAt time.Time
}

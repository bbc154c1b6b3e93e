package domain

import (
	"time"

	"github.com/google/uuid"
)

// Impression is an append-only record of one ad render. It is never
// mutated or deleted; campaign counters are derived from these facts.
type Impression struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	SessionID  string
	IP         string
	UserAgent  string
	Referrer   string
	Device     DeviceClass
	CreatedAt  time.Time
}

// Click is an append-only record of one ad interaction. ImpressionID
// links the click back to the impression that produced it when known; it
// has no effect on counting beyond the click counter itself.
type Click struct {
	ID              uuid.UUID
	CampaignID      uuid.UUID
	ImpressionID    *uuid.UUID
	SessionID       string
	IP              string
	UserAgent       string
	Converted       bool
	ConversionValue *int64
	CreatedAt       time.Time
}

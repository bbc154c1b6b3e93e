package domain

import (
	"time"

	"github.com/google/uuid"
)

// Placement identifies the visual slot a campaign's creative occupies.
type Placement string

const (
	PlacementPopup   Placement = "popup"
	PlacementBanner  Placement = "banner"
	PlacementSidebar Placement = "sidebar"
	PlacementHero    Placement = "hero"
)

// ValidPlacement reports whether p is one of the known placement slots.
func ValidPlacement(p Placement) bool {
	switch p {
	case PlacementPopup, PlacementBanner, PlacementSidebar, PlacementHero:
		return true
	}
	return false
}

// CampaignStatus is the lifecycle state of a campaign. Only active
// campaigns are ever served.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignPending   CampaignStatus = "pending"
	CampaignApproved  CampaignStatus = "approved"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignExpired   CampaignStatus = "expired"
	CampaignCompleted CampaignStatus = "completed"
	CampaignRejected  CampaignStatus = "rejected"
)

// PaymentStatus tracks whether the advertiser has paid for the campaign.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// AdvertiserStatus is the lifecycle state of a paying advertiser account.
type AdvertiserStatus string

const (
	AdvertiserInactive  AdvertiserStatus = "inactive"
	AdvertiserActive    AdvertiserStatus = "active"
	AdvertiserSuspended AdvertiserStatus = "suspended"
)

// Advertiser is a paying entity owning zero or more campaigns.
type Advertiser struct {
	ID            uuid.UUID
	BusinessName  string
	ContactEmail  string
	PaymentMethod string
	Status        AdvertiserStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Campaign is an ad creative plus targeting and a budget envelope.
// Budgets are stored in integer units (e.g. cents). Counter fields are
// monotonically non-decreasing and only ever changed by atomic
// in-database increments.
type Campaign struct {
	ID             uuid.UUID
	AdvertiserID   uuid.UUID
	BusinessName   string // advertiser display name, joined in on read
	Placement      Placement
	ImageURL       string
	MobileImageURL string
	AltText        string
	TargetURL      string
	StartDate      time.Time
	EndDate        time.Time
	TotalBudget    *int64
	DailyBudget    *int64
	// MaxImpressions and MaxClicks are exposure ceilings; nil means
	// unlimited.
	MaxImpressions     *int64
	MaxClicks          *int64
	CurrentImpressions int64
	CurrentClicks      int64
	// Devices restricts which device classes see the campaign. An empty
	// list targets every device.
	Devices       []DeviceClass
	Status        CampaignStatus
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Eligible reports whether the campaign may be selected for serving at
// the given instant: it must be active and paid, within its date window,
// and under its impression ceiling. The cap is checked at selection time
// only, so a concurrent burst may overshoot it slightly.
func (c *Campaign) Eligible(now time.Time) bool {
	if c.Status != CampaignActive || c.PaymentStatus != PaymentPaid {
		return false
	}
	if now.Before(c.StartDate) || now.After(c.EndDate) {
		return false
	}
	if c.MaxImpressions != nil && c.CurrentImpressions >= *c.MaxImpressions {
		return false
	}
	return true
}

// TargetsDevice reports whether the campaign should be shown on the
// given device class.
func (c *Campaign) TargetsDevice(d DeviceClass) bool {
	if len(c.Devices) == 0 {
		return true
	}
	for _, dc := range c.Devices {
		if dc == d {
			return true
		}
	}
	return false
}

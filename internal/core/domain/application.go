package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tier ranks creators for tier bonus lookups.
type Tier string

const (
	TierBronze Tier = "BRONZE"
	TierSilver Tier = "SILVER"
	TierGold   Tier = "GOLD"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold:
		return true
	}
	return false
}

// ApplicationStatus is the review state of a creator's application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// CreatorProfile is the subset of a creator (KOL) needed for payouts.
type CreatorProfile struct {
	ID       uuid.UUID
	Username string
	Tier     Tier
}

// CampaignMetric is one reported social post. Engagement is a whole percent
// stored as a decimal string.
type CampaignMetric struct {
	ID          uuid.UUID
	Impressions int64
	Clicks      int64
	Conversions int64
	Engagement  string
	PostURL     string
	Platform    string
	CreatedAt   time.Time
}

// Published reports whether the metric references a live post. Rows
// without a post URL are placeholders and do not count as delivered.
func (m CampaignMetric) Published() bool {
	return strings.TrimSpace(m.PostURL) != ""
}

// CampaignApplication is a creator's application to a campaign.
// ProposedAmount is empty when the creator did not propose one.
type CampaignApplication struct {
	ID             uuid.UUID
	CampaignID     uuid.UUID
	Creator        CreatorProfile
	Status         ApplicationStatus
	Proposal       string
	ProposedAmount string
	Metrics        []CampaignMetric
	CreatedAt      time.Time
}

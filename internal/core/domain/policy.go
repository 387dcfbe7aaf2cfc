package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MilestoneBonus is a flat amount unlocked once delivered impressions reach
// ImpressionGoal. Every reached milestone pays out; they are not tiers.
type MilestoneBonus struct {
	ImpressionGoal int64
	BonusAmount    string
}

// KolTierBonus is a percentage uplift for creators of the given tier.
// BonusPercentage is a whole percent ("12.5" means 12.5%).
type KolTierBonus struct {
	Tier            Tier
	BonusPercentage string
}

// MonetizationPolicy configures how creators of a campaign are paid on top
// of the campaign CPM.
type MonetizationPolicy struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	BaseRateMultiplier string
	MilestoneBonuses   []MilestoneBonus
	TierBonuses        []KolTierBonus
}

// PayoutTerms are the parsed policy parameters applied to one creator.
// Milestone amounts stay unparsed since only reached milestones matter.
type PayoutTerms struct {
	BaseRateMultiplier  decimal.Decimal
	TierBonusPercentage decimal.Decimal
	Milestones          []MilestoneBonus

	// Malformed is set when the multiplier or the creator's tier bonus did
	// not parse. Such terms pay nothing.
	Malformed bool
}

// DefaultPayoutTerms are used when no policy is attached: the payout
// reduces to CPM * impressions / 1000.
func DefaultPayoutTerms() PayoutTerms {
	return PayoutTerms{
		BaseRateMultiplier:  decimal.NewFromInt(1),
		TierBonusPercentage: decimal.Zero,
	}
}

// TermsFor resolves the policy for a creator of the given tier. A nil policy
// yields DefaultPayoutTerms and a blank multiplier falls back to 1.0. A
// malformed multiplier or tier percentage marks the terms Malformed.
func (p *MonetizationPolicy) TermsFor(tier Tier) PayoutTerms {
	terms := DefaultPayoutTerms()
	if p == nil {
		return terms
	}
	if strings.TrimSpace(p.BaseRateMultiplier) != "" {
		m, ok := ParseAmountOK(p.BaseRateMultiplier)
		terms.BaseRateMultiplier = m
		terms.Malformed = !ok
	}
	for _, b := range p.TierBonuses {
		if b.Tier == tier {
			pct, ok := ParseAmountOK(b.BonusPercentage)
			terms.TierBonusPercentage = pct
			terms.Malformed = terms.Malformed || !ok
			break
		}
	}
	terms.Milestones = p.MilestoneBonuses
	return terms
}

package domain

import "github.com/shopspring/decimal"

// PayoutBreakdown lists the intermediate amounts of a payout computation.
// A Malformed breakdown is all zero.
type PayoutBreakdown struct {
	BasePayout       decimal.Decimal `json:"basePayout"`
	MultipliedPayout decimal.Decimal `json:"multipliedPayout"`
	TierBonus        decimal.Decimal `json:"tierBonus"`
	MilestoneTotal   decimal.Decimal `json:"milestoneTotal"`
	Payout           decimal.Decimal `json:"payout"`
	Malformed        bool            `json:"malformed"`
}

// malformedPayout is the result of terms that cannot be evaluated.
func malformedPayout() PayoutBreakdown {
	return PayoutBreakdown{
		BasePayout:       decimal.Zero,
		MultipliedPayout: decimal.Zero,
		TierBonus:        decimal.Zero,
		MilestoneTotal:   decimal.Zero,
		Payout:           decimal.Zero,
		Malformed:        true,
	}
}

// ComputePayout returns what a creator earns for delivered impressions on a
// campaign paying cpmValue per thousand impressions under the given terms.
func ComputePayout(cpmValue string, delivered int64, terms PayoutTerms) decimal.Decimal {
	return ComputePayoutBreakdown(cpmValue, delivered, terms).Payout
}

// ComputePayoutBreakdown is ComputePayout with its intermediate amounts.
//
//	base       = cpm * delivered / 1000
//	multiplied = base * multiplier
//	tier       = multiplied * tierPercent / 100
//	milestones = sum of bonuses whose goal <= delivered
//	payout     = multiplied + tier + milestones
//
// The whole payout is zero and marked Malformed when the CPM, the terms or
// a reached milestone bonus is not a finite decimal, or when any step
// leaves float64 range. A negative total is reported as zero.
func ComputePayoutBreakdown(cpmValue string, delivered int64, terms PayoutTerms) PayoutBreakdown {
	if delivered < 0 {
		delivered = 0
	}
	cpm, ok := ParseAmountOK(cpmValue)
	if !ok || terms.Malformed {
		return malformedPayout()
	}
	multiplier, ok := bound(terms.BaseRateMultiplier)
	if !ok {
		return malformedPayout()
	}
	pct, ok := bound(terms.TierBonusPercentage)
	if !ok {
		return malformedPayout()
	}

	var b PayoutBreakdown
	b.BasePayout = cpm.Mul(decimal.NewFromInt(delivered)).Shift(-3)
	b.MultipliedPayout = b.BasePayout.Mul(multiplier)
	b.TierBonus = b.MultipliedPayout.Mul(pct.Shift(-2))
	b.MilestoneTotal = decimal.Zero
	for _, m := range terms.Milestones {
		if delivered < m.ImpressionGoal {
			continue
		}
		bonus, ok := ParseAmountOK(m.BonusAmount)
		if !ok {
			return malformedPayout()
		}
		b.MilestoneTotal = b.MilestoneTotal.Add(bonus)
	}
	b.Payout = b.MultipliedPayout.Add(b.TierBonus).Add(b.MilestoneTotal)

	for _, d := range []decimal.Decimal{b.BasePayout, b.MultipliedPayout, b.TierBonus, b.MilestoneTotal, b.Payout} {
		if _, ok := bound(d); !ok {
			return malformedPayout()
		}
	}
	if b.Payout.IsNegative() {
		b.Payout = decimal.Zero
	}
	return b
}

// ApplicationPayout computes the payout of one application under the
// campaign CPM and an optional policy. Only published metrics count.
func ApplicationPayout(c Campaign, policy *MonetizationPolicy, app CampaignApplication) PayoutBreakdown {
	return ComputePayoutBreakdown(c.CPMValue, DeliveredImpressions(app.Metrics), policy.TermsFor(app.Creator.Tier))
}

package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func goldPolicy() *MonetizationPolicy {
	return &MonetizationPolicy{
		BaseRateMultiplier: "1.5",
		MilestoneBonuses: []MilestoneBonus{
			{ImpressionGoal: 10000, BonusAmount: "20"},
			{ImpressionGoal: 50000, BonusAmount: "50"},
		},
		TierBonuses: []KolTierBonus{
			{Tier: TierBronze, BonusPercentage: "2.5"},
			{Tier: TierSilver, BonusPercentage: "5"},
			{Tier: TierGold, BonusPercentage: "10"},
		},
	}
}

func TestComputePayoutWithoutPolicy(t *testing.T) {
	got := ComputePayout("10", 50000, DefaultPayoutTerms())
	assert.Equal(t, "500.00", got.StringFixed(2))

	var none *MonetizationPolicy
	for _, tc := range []struct {
		cpm         string
		impressions int64
	}{
		{"0", 0}, {"0.5", 1}, {"2.75", 1234}, {"12.3456", 987654}, {"1000", 3},
	} {
		want := dec(tc.cpm).Mul(decimal.NewFromInt(tc.impressions)).Div(decimal.NewFromInt(1000))
		got := ComputePayout(tc.cpm, tc.impressions, none.TermsFor(TierGold))
		assert.Truef(t, want.Equal(got), "cpm=%s impressions=%d: want %s got %s", tc.cpm, tc.impressions, want, got)
	}
}

func TestComputePayoutWithPolicy(t *testing.T) {
	b := ComputePayoutBreakdown("10", 50000, goldPolicy().TermsFor(TierGold))

	assert.Equal(t, "500.00", b.BasePayout.StringFixed(2))
	assert.Equal(t, "750.00", b.MultipliedPayout.StringFixed(2))
	assert.Equal(t, "75.00", b.TierBonus.StringFixed(2))
	assert.Equal(t, "70.00", b.MilestoneTotal.StringFixed(2))
	assert.Equal(t, "895.00", b.Payout.StringFixed(2))
}

func TestMilestonesStack(t *testing.T) {
	terms := DefaultPayoutTerms()
	terms.Milestones = []MilestoneBonus{
		{ImpressionGoal: 5000, BonusAmount: "50"},
		{ImpressionGoal: 1000, BonusAmount: "10"},
	}

	b := ComputePayoutBreakdown("0", 6000, terms)
	assert.Equal(t, "60.00", b.MilestoneTotal.StringFixed(2))

	b = ComputePayoutBreakdown("0", 4999, terms)
	assert.Equal(t, "10.00", b.MilestoneTotal.StringFixed(2))

	b = ComputePayoutBreakdown("0", 5000, terms)
	assert.Equal(t, "60.00", b.MilestoneTotal.StringFixed(2))
}

func TestComputePayoutZeroImpressions(t *testing.T) {
	assert.True(t, ComputePayout("10", 0, goldPolicy().TermsFor(TierGold)).IsZero())

	terms := DefaultPayoutTerms()
	terms.Milestones = []MilestoneBonus{{ImpressionGoal: 0, BonusAmount: "5"}}
	assert.Equal(t, "5.00", ComputePayout("10", 0, terms).StringFixed(2))
}

func TestComputePayoutMonotonic(t *testing.T) {
	terms := goldPolicy().TermsFor(TierSilver)
	prev := decimal.Zero
	for imp := int64(0); imp <= 60000; imp += 2500 {
		got := ComputePayout("3.2", imp, terms)
		require.Falsef(t, got.LessThan(prev), "payout decreased at %d impressions", imp)
		prev = got
	}
}

func TestComputePayoutVoidsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		cpm   string
		terms PayoutTerms
	}{
		{
			name:  "malformed cpm with goal 0 milestone",
			cpm:   "oops",
			terms: PayoutTerms{BaseRateMultiplier: dec("1"), Milestones: []MilestoneBonus{{ImpressionGoal: 0, BonusAmount: "50"}}},
		},
		{
			name:  "blank cpm",
			cpm:   " ",
			terms: DefaultPayoutTerms(),
		},
		{
			name:  "reached milestone with malformed bonus",
			cpm:   "10",
			terms: (&MonetizationPolicy{BaseRateMultiplier: "1.0", MilestoneBonuses: []MilestoneBonus{{ImpressionGoal: 10, BonusAmount: "abc"}}}).TermsFor(TierGold),
		},
		{
			name:  "malformed tier percentage",
			cpm:   "10",
			terms: (&MonetizationPolicy{TierBonuses: []KolTierBonus{{Tier: TierGold, BonusPercentage: "ten"}}}).TermsFor(TierGold),
		},
		{
			name:  "malformed multiplier",
			cpm:   "10",
			terms: (&MonetizationPolicy{BaseRateMultiplier: "NaN"}).TermsFor(TierGold),
		},
		{
			name:  "infinite cpm",
			cpm:   "Infinity",
			terms: DefaultPayoutTerms(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputePayoutBreakdown(tt.cpm, 1000, tt.terms)
			assert.True(t, b.Malformed)
			assert.True(t, b.Payout.IsZero())
			assert.True(t, b.BasePayout.IsZero())
			assert.True(t, b.MilestoneTotal.IsZero())
		})
	}
}

func TestComputePayoutIgnoresUnreachedMalformedMilestone(t *testing.T) {
	policy := &MonetizationPolicy{
		MilestoneBonuses: []MilestoneBonus{{ImpressionGoal: 5000, BonusAmount: "abc"}},
		TierBonuses:      []KolTierBonus{{Tier: TierSilver, BonusPercentage: "bad"}},
	}
	b := ComputePayoutBreakdown("10", 1000, policy.TermsFor(TierGold))
	assert.False(t, b.Malformed)
	assert.Equal(t, "10.00", b.Payout.StringFixed(2))
}

func TestComputePayoutOutOfRangeAmounts(t *testing.T) {
	huge := &MonetizationPolicy{BaseRateMultiplier: "1e2000000000"}

	var b PayoutBreakdown
	require.NotPanics(t, func() { b = ComputePayoutBreakdown("1e2000000000", 1000, huge.TermsFor(TierGold)) })
	assert.True(t, b.Malformed)
	assert.Equal(t, "0.00", b.Payout.StringFixed(2))

	b = ComputePayoutBreakdown("1e400000000", 1000, DefaultPayoutTerms())
	assert.True(t, b.Malformed)
	assert.Equal(t, "0.00", b.Payout.StringFixed(2))

	// finite inputs whose product leaves float64 range
	terms := DefaultPayoutTerms()
	terms.BaseRateMultiplier = dec("1e300")
	b = ComputePayoutBreakdown("1e300", 1000000, terms)
	assert.True(t, b.Malformed)
	assert.True(t, b.Payout.IsZero())

	b = ComputePayoutBreakdown("1e-2000000000", 1000, DefaultPayoutTerms())
	assert.False(t, b.Malformed)
	assert.True(t, b.Payout.IsZero())
}

func TestComputePayoutNeverNegative(t *testing.T) {
	policy := &MonetizationPolicy{
		BaseRateMultiplier: "-2",
		MilestoneBonuses:   []MilestoneBonus{{ImpressionGoal: 1, BonusAmount: "-100"}},
	}
	got := ComputePayout("10", 1000, policy.TermsFor(TierBronze))
	assert.True(t, got.IsZero())

	got = ComputePayout("10", -5, DefaultPayoutTerms())
	assert.True(t, got.IsZero())
}

func TestTermsFor(t *testing.T) {
	policy := goldPolicy()

	terms := policy.TermsFor(TierBronze)
	assert.True(t, dec("1.5").Equal(terms.BaseRateMultiplier))
	assert.True(t, dec("2.5").Equal(terms.TierBonusPercentage))
	assert.Len(t, terms.Milestones, 2)

	policy.TierBonuses = policy.TierBonuses[:1]
	terms = policy.TermsFor(TierGold)
	assert.True(t, terms.TierBonusPercentage.IsZero())

	policy.BaseRateMultiplier = "  "
	terms = policy.TermsFor(TierGold)
	assert.True(t, decimal.NewFromInt(1).Equal(terms.BaseRateMultiplier))
	assert.False(t, terms.Malformed)

	policy.BaseRateMultiplier = "1.0.0"
	assert.True(t, policy.TermsFor(TierGold).Malformed)
}

func TestApplicationPayoutCountsPublishedOnly(t *testing.T) {
	c := Campaign{CPMValue: "10"}
	app := CampaignApplication{
		Creator: CreatorProfile{Tier: TierGold},
		Metrics: []CampaignMetric{
			{Impressions: 30000, PostURL: "https://x.com/p/1"},
			{Impressions: 20000, PostURL: "https://x.com/p/2"},
			{Impressions: 90000},
		},
	}

	assert.Equal(t, "500.00", ApplicationPayout(c, nil, app).Payout.StringFixed(2))
	assert.Equal(t, "895.00", ApplicationPayout(c, goldPolicy(), app).Payout.StringFixed(2))
}

func TestParseAmount(t *testing.T) {
	for in, want := range map[string]string{
		"12.5":          "12.5",
		" 7 ":           "7",
		"":              "0",
		"abc":           "0",
		"NaN":           "0",
		"Infinity":      "0",
		"-3.25":         "-3.25",
		"1e400":         "0",
		"-1e2000000000": "0",
		"1e-2000000000": "0",
		"1e308":         "1e308",
	} {
		assert.Truef(t, dec(want).Equal(ParseAmount(in)), "ParseAmount(%q)", in)
	}
	assert.True(t, IsAmount("1.0"))
	assert.True(t, IsAmount("1e-2000000000"))
	assert.False(t, IsAmount("1.0.0"))
	assert.False(t, IsAmount("1e400"))
	assert.False(t, IsAmount(""))

	d, ok := ParseAmountOK("0." + strings.Repeat("3", 100))
	assert.True(t, ok)
	assert.EqualValues(t, -64, d.Exponent())
}

func TestSummarizeMetrics(t *testing.T) {
	metrics := []CampaignMetric{
		{Impressions: 1000, Clicks: 10, Conversions: 1, Engagement: "4", PostURL: "a"},
		{Impressions: 3000, Clicks: 30, Conversions: 3, Engagement: "2", PostURL: "b"},
		{Impressions: 500, Clicks: 5, Engagement: "9"},
	}

	all := SummarizeMetrics(metrics, false)
	assert.Equal(t, 3, all.Rows)
	assert.EqualValues(t, 4500, all.Impressions)
	assert.EqualValues(t, 45, all.Clicks)
	assert.Equal(t, "5.00", all.Engagement.StringFixed(2))
	assert.Equal(t, "15", all.EngagementTotal.String())

	published := SummarizeMetrics(metrics, true)
	assert.Equal(t, 2, published.Rows)
	assert.EqualValues(t, 4000, published.Impressions)
	assert.EqualValues(t, 4, published.Conversions)
	assert.Equal(t, "3.00", published.Engagement.StringFixed(2))
	assert.EqualValues(t, 4000, DeliveredImpressions(metrics))

	empty := SummarizeMetrics(nil, true)
	assert.True(t, empty.Engagement.IsZero())
}

func TestSummarizeMetricsRates(t *testing.T) {
	metrics := []CampaignMetric{
		{Impressions: 1000, Clicks: 10, Conversions: 1, PostURL: "a"},
		{Impressions: 3000, Clicks: 30, Conversions: 3, PostURL: "b"},
		{Impressions: 500, Clicks: 5},
	}

	all := SummarizeMetrics(metrics, false)
	assert.Equal(t, "1.00", all.CTR.StringFixed(2))
	assert.Equal(t, "8.89", all.ConversionRate.StringFixed(2))
	assert.True(t, all.CPC.IsZero())
	assert.Equal(t, "2.00", all.WithCost(dec("90")).CPC.StringFixed(2))

	published := SummarizeMetrics(metrics, true)
	assert.Equal(t, "10.00", published.ConversionRate.StringFixed(2))

	noClicks := SummarizeMetrics([]CampaignMetric{{Impressions: 800, PostURL: "a"}}, true)
	assert.True(t, noClicks.CTR.IsZero())
	assert.True(t, noClicks.ConversionRate.IsZero())
	assert.True(t, noClicks.WithCost(dec("500")).CPC.IsZero())

	empty := SummarizeMetrics(nil, false).WithCost(dec("500"))
	assert.True(t, empty.CTR.IsZero())
	assert.True(t, empty.CPC.IsZero())
}

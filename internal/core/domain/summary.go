package domain

import "github.com/shopspring/decimal"

// MetricSummary aggregates metric rows. Engagement is the arithmetic mean of
// the per-row engagement percentages over the counted rows; EngagementTotal
// is their plain sum.
//
// CTR and ConversionRate are percentages (clicks per impression, conversions
// per click). CPC is only set by WithCost.
type MetricSummary struct {
	Rows            int             `json:"rows"`
	Impressions     int64           `json:"impressions"`
	Clicks          int64           `json:"clicks"`
	Conversions     int64           `json:"conversions"`
	Engagement      decimal.Decimal `json:"engagement"`
	EngagementTotal decimal.Decimal `json:"-"`
	CTR             decimal.Decimal `json:"ctr"`
	ConversionRate  decimal.Decimal `json:"conversionRate"`
	CPC             decimal.Decimal `json:"cpc"`
}

// SummarizeMetrics totals the given metrics. With publishedOnly set, rows
// without a post URL are skipped.
func SummarizeMetrics(metrics []CampaignMetric, publishedOnly bool) MetricSummary {
	s := MetricSummary{
		Engagement:      decimal.Zero,
		EngagementTotal: decimal.Zero,
		CPC:             decimal.Zero,
	}
	for _, m := range metrics {
		if publishedOnly && !m.Published() {
			continue
		}
		s.Rows++
		s.Impressions += m.Impressions
		s.Clicks += m.Clicks
		s.Conversions += m.Conversions
		s.EngagementTotal = s.EngagementTotal.Add(ParseAmount(m.Engagement))
	}
	s.Engagement = safeDiv(s.EngagementTotal, decimal.NewFromInt(int64(s.Rows)))
	clicks := decimal.NewFromInt(s.Clicks)
	s.CTR = safeDiv(clicks, decimal.NewFromInt(s.Impressions)).Mul(hundred)
	s.ConversionRate = safeDiv(decimal.NewFromInt(s.Conversions), clicks).Mul(hundred)
	return s
}

// WithCost sets CPC to cost spread over the summarized clicks, or zero
// without clicks.
func (s MetricSummary) WithCost(cost decimal.Decimal) MetricSummary {
	s.CPC = safeDiv(cost, decimal.NewFromInt(s.Clicks))
	return s
}

// SummarizeApplications merges the metrics of every application.
func SummarizeApplications(apps []CampaignApplication, publishedOnly bool) MetricSummary {
	var all []CampaignMetric
	for _, a := range apps {
		all = append(all, a.Metrics...)
	}
	return SummarizeMetrics(all, publishedOnly)
}

// DeliveredImpressions sums impressions over published metrics.
func DeliveredImpressions(metrics []CampaignMetric) int64 {
	var total int64
	for _, m := range metrics {
		if m.Published() {
			total += m.Impressions
		}
	}
	return total
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)

// SpendBasis selects which applications count towards spend so far.
type SpendBasis string

const (
	// SpendAllApplications sums proposed amounts of every application,
	// whatever its status.
	SpendAllApplications SpendBasis = "all"
	// SpendApprovedApplications sums approved applications only.
	SpendApprovedApplications SpendBasis = "approved"
)

// EngagementAggregation selects how per-post engagement percentages are
// combined into the campaign total.
type EngagementAggregation string

const (
	EngagementSum  EngagementAggregation = "sum"
	EngagementMean EngagementAggregation = "mean"
)

// AggregationPolicy controls how a snapshot is reduced before forecasting.
// The zero value behaves like DefaultAggregationPolicy.
type AggregationPolicy struct {
	SpendBasis    SpendBasis            `json:"spendBasis"`
	Engagement    EngagementAggregation `json:"engagement"`
	PublishedOnly bool                  `json:"publishedOnly"`
}

// DefaultAggregationPolicy counts every application's proposed amount as
// spend, sums engagement percentages across posts and includes unpublished
// metric rows.
func DefaultAggregationPolicy() AggregationPolicy {
	return AggregationPolicy{
		SpendBasis: SpendAllApplications,
		Engagement: EngagementSum,
	}
}

// PerformanceReport describes budget pacing and forecasts of a campaign.
type PerformanceReport struct {
	IdealDailySpend                decimal.Decimal `json:"idealDailySpend"`
	ActualDailySpend               decimal.Decimal `json:"actualDailySpend"`
	RemainingDailySpend            decimal.Decimal `json:"remainingDailySpend"`
	RemainingBudget                decimal.Decimal `json:"remainingBudget"`
	ProjectedTotalSpend            decimal.Decimal `json:"projectedTotalSpend"`
	BudgetVariance                 decimal.Decimal `json:"budgetVariance"`
	PacingIndex                    decimal.Decimal `json:"pacingIndex"`
	DeliveredImpressions           decimal.Decimal `json:"deliveredImpressions"`
	ForecastedImpressionsRemaining decimal.Decimal `json:"forecastedImpressionsRemaining"`
	CostPerEngagement              decimal.Decimal `json:"costPerEngagement"`
	EngagementRate                 decimal.Decimal `json:"engagementRate"`
	DaysCoverable                  decimal.Decimal `json:"daysCoverable"`
	ProjectedTotalEngagement       decimal.Decimal `json:"projectedTotalEngagement"`
	EngagementForecastRemaining    decimal.Decimal `json:"engagementForecastRemaining"`
	CPMVariance                    decimal.Decimal `json:"cpmVariance"`

	DurationTotalDays int64           `json:"durationTotalDays"`
	ElapsedDays       int64           `json:"elapsedDays"`
	DaysLeft          int64           `json:"daysLeft"`
	SpendSoFar        decimal.Decimal `json:"spendSoFar"`
	TotalImpressions  int64           `json:"totalImpressions"`
	TotalEngagement   decimal.Decimal `json:"totalEngagement"`
	CurrentCPM        decimal.Decimal `json:"currentCpm"`
	BudgetCPM         decimal.Decimal `json:"budgetCpm"`
}

// Pacing labels for PerformanceReport.Pacing.
const (
	PacingOverspending  = "overspending"
	PacingUnderspending = "underspending"
	PacingOnTrack       = "on_track"
)

// Pacing interprets PacingIndex: above 1 is overspending, below 1 is
// underspending.
func (r PerformanceReport) Pacing() string {
	switch r.PacingIndex.Cmp(decimal.NewFromInt(1)) {
	case 1:
		return PacingOverspending
	case -1:
		return PacingUnderspending
	default:
		return PacingOnTrack
	}
}

// OverBudget reports whether spend is projected to exceed the budget.
func (r PerformanceReport) OverBudget() bool {
	return r.BudgetVariance.IsPositive()
}

// ComputePerformance derives the pacing and forecast metrics of a campaign
// as of now. Every division by a zero (or negative) quantity yields zero and
// malformed amounts count as zero, so the report is always well formed.
func ComputePerformance(s CampaignSnapshot, now time.Time, policy AggregationPolicy) PerformanceReport {
	var r PerformanceReport

	budget := ParseAmount(s.Campaign.Budget)
	r.DurationTotalDays = ceilDays(s.Campaign.EndDate.Sub(s.Campaign.StartDate))
	r.ElapsedDays = max(0, ceilDays(now.Sub(s.Campaign.StartDate)))
	r.DaysLeft = max(0, ceilDays(s.Campaign.EndDate.Sub(now)))

	r.SpendSoFar = spendSoFar(s.Applications, policy.SpendBasis)
	r.TotalImpressions, r.TotalEngagement = delivery(s.Applications, policy)

	impressions := decimal.NewFromInt(r.TotalImpressions)
	duration := decimal.NewFromInt(r.DurationTotalDays)
	elapsed := decimal.NewFromInt(r.ElapsedDays)
	left := decimal.NewFromInt(r.DaysLeft)

	r.CurrentCPM = safeDiv(r.SpendSoFar, impressions).Mul(thousand)
	r.BudgetCPM = safeDiv(budget, impressions).Mul(thousand)

	r.IdealDailySpend = safeDiv(budget, duration)
	r.ActualDailySpend = safeDiv(r.SpendSoFar, elapsed)
	r.RemainingBudget = budget.Sub(r.SpendSoFar)
	r.RemainingDailySpend = safeDiv(r.RemainingBudget, left)
	r.ProjectedTotalSpend = decimal.Zero
	if r.ElapsedDays > 0 {
		r.ProjectedTotalSpend = r.ActualDailySpend.Mul(duration)
	}
	r.BudgetVariance = r.ProjectedTotalSpend.Sub(budget)
	r.PacingIndex = safeDiv(r.ActualDailySpend, r.IdealDailySpend)
	r.DeliveredImpressions = safeDiv(r.SpendSoFar, r.CurrentCPM).Mul(thousand)
	r.ForecastedImpressionsRemaining = safeDiv(r.RemainingBudget, r.CurrentCPM).Mul(thousand)
	r.CostPerEngagement = safeDiv(r.SpendSoFar, r.TotalEngagement)
	r.EngagementRate = safeDiv(r.TotalEngagement, impressions)
	r.DaysCoverable = safeDiv(r.RemainingBudget, r.ActualDailySpend)

	dailyEngagement := safeDiv(r.TotalEngagement, elapsed)
	r.ProjectedTotalEngagement = dailyEngagement.Mul(duration)
	r.EngagementForecastRemaining = dailyEngagement.Mul(left)
	r.CPMVariance = safeDiv(r.CurrentCPM.Sub(r.BudgetCPM), r.BudgetCPM).Mul(hundred)

	return r
}

func spendSoFar(apps []CampaignApplication, basis SpendBasis) decimal.Decimal {
	total := decimal.Zero
	for _, a := range apps {
		if basis == SpendApprovedApplications && a.Status != ApplicationApproved {
			continue
		}
		total = total.Add(ParseAmount(a.ProposedAmount))
	}
	return total
}

func delivery(apps []CampaignApplication, policy AggregationPolicy) (int64, decimal.Decimal) {
	sum := SummarizeApplications(apps, policy.PublishedOnly)
	if policy.Engagement == EngagementMean {
		return sum.Impressions, sum.Engagement
	}
	return sum.Impressions, sum.EngagementTotal
}

// safeDiv returns num/den, or zero unless den is strictly positive.
func safeDiv(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den)
}

// ceilDays rounds d up to whole days.
func ceilDays(d time.Duration) int64 {
	days := int64(d / day)
	if d%day > 0 {
		days++
	}
	return days
}

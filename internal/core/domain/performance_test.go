package domain

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func snapshot(budget string, days int, apps ...CampaignApplication) CampaignSnapshot {
	return CampaignSnapshot{
		Campaign: Campaign{
			Budget:    budget,
			CPMValue:  "10",
			StartDate: start,
			EndDate:   start.AddDate(0, 0, days),
			Status:    CampaignActive,
		},
		Applications: apps,
	}
}

func application(status ApplicationStatus, amount string, metrics ...CampaignMetric) CampaignApplication {
	return CampaignApplication{Status: status, ProposedAmount: amount, Metrics: metrics}
}

func assertFixed(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Equalf(t, want, got.StringFixed(2), "%s", field)
}

func TestComputePerformancePacing(t *testing.T) {
	s := snapshot("10000", 10,
		application(ApplicationApproved, "3500",
			CampaignMetric{Impressions: 400000, Engagement: "3", PostURL: "a"}),
		application(ApplicationPending, "2500",
			CampaignMetric{Impressions: 200000, Engagement: "5", PostURL: "b"},
			CampaignMetric{Impressions: 0, Engagement: "2"}),
	)
	r := ComputePerformance(s, start.AddDate(0, 0, 5), DefaultAggregationPolicy())

	assert.EqualValues(t, 10, r.DurationTotalDays)
	assert.EqualValues(t, 5, r.ElapsedDays)
	assert.EqualValues(t, 5, r.DaysLeft)
	assertFixed(t, "6000.00", r.SpendSoFar, "spendSoFar")
	assertFixed(t, "1000.00", r.IdealDailySpend, "idealDailySpend")
	assertFixed(t, "1200.00", r.ActualDailySpend, "actualDailySpend")
	assertFixed(t, "1.20", r.PacingIndex, "pacingIndex")
	assert.Equal(t, PacingOverspending, r.Pacing())
	assertFixed(t, "4000.00", r.RemainingBudget, "remainingBudget")
	assertFixed(t, "800.00", r.RemainingDailySpend, "remainingDailySpend")
	assertFixed(t, "12000.00", r.ProjectedTotalSpend, "projectedTotalSpend")
	assertFixed(t, "2000.00", r.BudgetVariance, "budgetVariance")
	assert.True(t, r.OverBudget())

	assert.EqualValues(t, 600000, r.TotalImpressions)
	assertFixed(t, "10.00", r.TotalEngagement, "totalEngagement")
	assertFixed(t, "10.00", r.CurrentCPM, "currentCPM")
	assertFixed(t, "16.67", r.BudgetCPM, "budgetCPM")
	assertFixed(t, "600000.00", r.DeliveredImpressions, "deliveredImpressions")
	assertFixed(t, "400000.00", r.ForecastedImpressionsRemaining, "forecastedImpressionsRemaining")
	assertFixed(t, "600.00", r.CostPerEngagement, "costPerEngagement")
	assert.Equal(t, "0.0000166667", r.EngagementRate.StringFixed(10))
	assertFixed(t, "3.33", r.DaysCoverable, "daysCoverable")
	assertFixed(t, "20.00", r.ProjectedTotalEngagement, "projectedTotalEngagement")
	assertFixed(t, "10.00", r.EngagementForecastRemaining, "engagementForecastRemaining")
	assertFixed(t, "-40.00", r.CPMVariance, "cpmVariance")
}

func TestComputePerformanceZeroImpressions(t *testing.T) {
	s := snapshot("10000", 10, application(ApplicationApproved, "6000"))
	r := ComputePerformance(s, start.AddDate(0, 0, 5), DefaultAggregationPolicy())

	assert.True(t, r.DeliveredImpressions.IsZero())
	assert.True(t, r.ForecastedImpressionsRemaining.IsZero())
	assert.True(t, r.EngagementRate.IsZero())
	assert.True(t, r.CPMVariance.IsZero())
	assert.True(t, r.CurrentCPM.IsZero())
	assert.True(t, r.BudgetCPM.IsZero())
	assert.True(t, r.CostPerEngagement.IsZero())
	assertFixed(t, "1.20", r.PacingIndex, "pacingIndex")
}

func TestComputePerformanceDegenerateDates(t *testing.T) {
	tests := []struct {
		name string
		s    CampaignSnapshot
		now  time.Time
	}{
		{"not started", snapshot("5000", 10, application(ApplicationPending, "100")), start.Add(-48 * time.Hour)},
		{"zero duration", snapshot("5000", 0, application(ApplicationPending, "100")), start},
		{"ended", snapshot("5000", 3, application(ApplicationPending, "100")), start.AddDate(0, 1, 0)},
		{"empty", snapshot("", 10), start.Add(time.Hour)},
		{"malformed", snapshot("lots", 10, application(ApplicationApproved, "n/a",
			CampaignMetric{Impressions: 10, Engagement: "??"})), start.AddDate(0, 0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputePerformance(tt.s, tt.now, DefaultAggregationPolicy())
			assert.GreaterOrEqual(t, r.ElapsedDays, int64(0))
			assert.GreaterOrEqual(t, r.DaysLeft, int64(0))

			v := reflect.ValueOf(r)
			for i := 0; i < v.NumField(); i++ {
				if d, ok := v.Field(i).Interface().(decimal.Decimal); ok {
					_, err := decimal.NewFromString(d.String())
					require.NoErrorf(t, err, "%s is not a well-formed decimal", v.Type().Field(i).Name)
				}
			}
		})
	}

	r := ComputePerformance(snapshot("5000", 0), start, DefaultAggregationPolicy())
	assert.True(t, r.IdealDailySpend.IsZero())
	assert.True(t, r.PacingIndex.IsZero())

	r = ComputePerformance(snapshot("5000", 10, application(ApplicationPending, "100")), start.Add(-48*time.Hour), DefaultAggregationPolicy())
	assert.EqualValues(t, 0, r.ElapsedDays)
	assert.EqualValues(t, 12, r.DaysLeft)
	assert.True(t, r.ActualDailySpend.IsZero())
	assert.True(t, r.ProjectedTotalSpend.IsZero())
	assertFixed(t, "-5000.00", r.BudgetVariance, "budgetVariance")
	assert.False(t, r.OverBudget())
}

func TestComputePerformanceRoundsPartialDaysUp(t *testing.T) {
	s := snapshot("1000", 10)
	s.Campaign.EndDate = start.Add(9*day + time.Hour)

	r := ComputePerformance(s, start.Add(90*time.Minute), DefaultAggregationPolicy())
	assert.EqualValues(t, 10, r.DurationTotalDays)
	assert.EqualValues(t, 1, r.ElapsedDays)
	assert.EqualValues(t, 9, r.DaysLeft)
}

func TestComputePerformanceOnTrack(t *testing.T) {
	s := snapshot("10000", 10, application(ApplicationApproved, "5000"))
	r := ComputePerformance(s, start.AddDate(0, 0, 5), DefaultAggregationPolicy())

	assert.True(t, r.PacingIndex.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, PacingOnTrack, r.Pacing())
	assert.True(t, r.BudgetVariance.IsZero())
	assert.False(t, r.OverBudget())

	s = snapshot("10000", 10, application(ApplicationApproved, "1000"))
	r = ComputePerformance(s, start.AddDate(0, 0, 5), DefaultAggregationPolicy())
	assert.Equal(t, PacingUnderspending, r.Pacing())
}

func TestComputePerformanceAggregationPolicy(t *testing.T) {
	s := snapshot("10000", 10,
		application(ApplicationApproved, "3000",
			CampaignMetric{Impressions: 1000, Engagement: "4", PostURL: "a"},
			CampaignMetric{Impressions: 1000, Engagement: "8"}),
		application(ApplicationRejected, "2000",
			CampaignMetric{Impressions: 2000, Engagement: "6", PostURL: "b"}),
	)
	now := start.AddDate(0, 0, 5)

	def := ComputePerformance(s, now, AggregationPolicy{})
	assertFixed(t, "5000.00", def.SpendSoFar, "spendSoFar")
	assertFixed(t, "18.00", def.TotalEngagement, "totalEngagement")
	assert.EqualValues(t, 4000, def.TotalImpressions)

	r := ComputePerformance(s, now, AggregationPolicy{
		SpendBasis:    SpendApprovedApplications,
		Engagement:    EngagementMean,
		PublishedOnly: true,
	})
	assertFixed(t, "3000.00", r.SpendSoFar, "spendSoFar")
	assertFixed(t, "5.00", r.TotalEngagement, "totalEngagement")
	assert.EqualValues(t, 3000, r.TotalImpressions)
}

func TestComputePerformanceIdempotent(t *testing.T) {
	s := snapshot("7500", 30,
		application(ApplicationApproved, "1234.56",
			CampaignMetric{Impressions: 98765, Engagement: "3.3", PostURL: "a"}))
	now := start.AddDate(0, 0, 7).Add(3 * time.Hour)

	first := ComputePerformance(s, now, DefaultAggregationPolicy())
	second := ComputePerformance(s, now, DefaultAggregationPolicy())
	assert.Equal(t, first, second)
}

func TestComputePerformanceOutOfRangeAmounts(t *testing.T) {
	s := snapshot("1e2000000000", 10,
		application(ApplicationApproved, "1e2000000000",
			CampaignMetric{Impressions: 1000, Engagement: "1e-2000000000", PostURL: "a"}),
		application(ApplicationPending, "100",
			CampaignMetric{Impressions: 1000, Engagement: "1e400", PostURL: "b"}))

	r := ComputePerformance(s, start.AddDate(0, 0, 5), DefaultAggregationPolicy())
	assertFixed(t, "100.00", r.SpendSoFar, "spendSoFar")
	assertFixed(t, "-100.00", r.RemainingBudget, "remainingBudget")
	assert.True(t, r.TotalEngagement.IsZero())
	assert.True(t, r.IdealDailySpend.IsZero())

	v := reflect.ValueOf(r)
	for i := 0; i < v.NumField(); i++ {
		if d, ok := v.Field(i).Interface().(decimal.Decimal); ok {
			assert.NotPanicsf(t, func() { _ = d.StringFixed(2) }, "%s", v.Type().Field(i).Name)
		}
	}
}

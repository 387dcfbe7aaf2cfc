package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"kolpay/internal/core/domain"
)

// Decimal places used when amounts leave the service.
const (
	moneyPlaces = 2
	ratioPlaces = 4
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the header is already sent
		h.logger.ErrorContext(r.Context(), "encode response error", slog.Any("error", err))
	}
}

// money is a currency amount rendered with exactly two decimals ("895.00").
type money decimal.Decimal

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + decimal.Decimal(m).StringFixed(moneyPlaces) + `"`), nil
}

// ratio rounds d to four places; trailing zeros are dropped.
func ratio(d decimal.Decimal) decimal.Decimal { return d.Round(ratioPlaces) }

type reportResponse struct {
	IdealDailySpend                money           `json:"idealDailySpend"`
	ActualDailySpend               money           `json:"actualDailySpend"`
	RemainingDailySpend            money           `json:"remainingDailySpend"`
	RemainingBudget                money           `json:"remainingBudget"`
	ProjectedTotalSpend            money           `json:"projectedTotalSpend"`
	BudgetVariance                 money           `json:"budgetVariance"`
	PacingIndex                    decimal.Decimal `json:"pacingIndex"`
	DeliveredImpressions           decimal.Decimal `json:"deliveredImpressions"`
	ForecastedImpressionsRemaining decimal.Decimal `json:"forecastedImpressionsRemaining"`
	CostPerEngagement              money           `json:"costPerEngagement"`
	EngagementRate                 decimal.Decimal `json:"engagementRate"`
	DaysCoverable                  decimal.Decimal `json:"daysCoverable"`
	ProjectedTotalEngagement       decimal.Decimal `json:"projectedTotalEngagement"`
	EngagementForecastRemaining    decimal.Decimal `json:"engagementForecastRemaining"`
	CPMVariance                    decimal.Decimal `json:"cpmVariance"`

	DurationTotalDays int64           `json:"durationTotalDays"`
	ElapsedDays       int64           `json:"elapsedDays"`
	DaysLeft          int64           `json:"daysLeft"`
	SpendSoFar        money           `json:"spendSoFar"`
	TotalImpressions  int64           `json:"totalImpressions"`
	TotalEngagement   decimal.Decimal `json:"totalEngagement"`
	CurrentCPM        money           `json:"currentCpm"`
	BudgetCPM         money           `json:"budgetCpm"`
}

// toReportResponse renders currency amounts in cents and everything else to
// four places.
func toReportResponse(r domain.PerformanceReport) reportResponse {
	return reportResponse{
		IdealDailySpend:                money(r.IdealDailySpend),
		ActualDailySpend:               money(r.ActualDailySpend),
		RemainingDailySpend:            money(r.RemainingDailySpend),
		RemainingBudget:                money(r.RemainingBudget),
		ProjectedTotalSpend:            money(r.ProjectedTotalSpend),
		BudgetVariance:                 money(r.BudgetVariance),
		PacingIndex:                    ratio(r.PacingIndex),
		DeliveredImpressions:           ratio(r.DeliveredImpressions),
		ForecastedImpressionsRemaining: ratio(r.ForecastedImpressionsRemaining),
		CostPerEngagement:              money(r.CostPerEngagement),
		EngagementRate:                 ratio(r.EngagementRate),
		DaysCoverable:                  ratio(r.DaysCoverable),
		ProjectedTotalEngagement:       ratio(r.ProjectedTotalEngagement),
		EngagementForecastRemaining:    ratio(r.EngagementForecastRemaining),
		CPMVariance:                    ratio(r.CPMVariance),
		DurationTotalDays:              r.DurationTotalDays,
		ElapsedDays:                    r.ElapsedDays,
		DaysLeft:                       r.DaysLeft,
		SpendSoFar:                     money(r.SpendSoFar),
		TotalImpressions:               r.TotalImpressions,
		TotalEngagement:                ratio(r.TotalEngagement),
		CurrentCPM:                     money(r.CurrentCPM),
		BudgetCPM:                      money(r.BudgetCPM),
	}
}

type summaryResponse struct {
	Rows           int             `json:"rows"`
	Impressions    int64           `json:"impressions"`
	Clicks         int64           `json:"clicks"`
	Conversions    int64           `json:"conversions"`
	Engagement     decimal.Decimal `json:"engagement"`
	CTR            decimal.Decimal `json:"ctr"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
	CPC            money           `json:"cpc"`
}

func toSummaryResponse(s domain.MetricSummary) summaryResponse {
	return summaryResponse{
		Rows:           s.Rows,
		Impressions:    s.Impressions,
		Clicks:         s.Clicks,
		Conversions:    s.Conversions,
		Engagement:     ratio(s.Engagement),
		CTR:            ratio(s.CTR),
		ConversionRate: ratio(s.ConversionRate),
		CPC:            money(s.CPC),
	}
}

type breakdownResponse struct {
	BasePayout       money `json:"basePayout"`
	MultipliedPayout money `json:"multipliedPayout"`
	TierBonus        money `json:"tierBonus"`
	MilestoneTotal   money `json:"milestoneTotal"`
	Payout           money `json:"payout"`
	Malformed        bool  `json:"malformed"`
}

func toBreakdownResponse(b domain.PayoutBreakdown) breakdownResponse {
	return breakdownResponse{
		BasePayout:       money(b.BasePayout),
		MultipliedPayout: money(b.MultipliedPayout),
		TierBonus:        money(b.TierBonus),
		MilestoneTotal:   money(b.MilestoneTotal),
		Payout:           money(b.Payout),
		Malformed:        b.Malformed,
	}
}

package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kolpay/internal/core/domain"
)

// CampaignUseCase defines the read operations the dashboard relies on. This
// interface is the primary port into the application domain.
type CampaignUseCase interface {
	// CampaignPerformance loads a campaign snapshot and returns its
	// pacing and forecast report. Unknown campaigns yield
	// ErrCampaignNotFound.
	CampaignPerformance(ctx context.Context, id uuid.UUID) (*PerformanceResp, error)

	// CampaignPayouts returns the payout of every application to the
	// campaign, sorted by delivered impressions.
	CampaignPayouts(ctx context.Context, id uuid.UUID) (*PayoutsResp, error)

	// QuotePayout computes a payout for ad hoc terms without touching
	// storage. Negative impressions yield ErrInvalidQuote.
	QuotePayout(ctx context.Context, req QuoteReq) (*domain.PayoutBreakdown, error)
}

// CampaignHeader identifies the campaign a response refers to.
type CampaignHeader struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Status    domain.CampaignStatus `json:"status"`
	Budget    decimal.Decimal       `json:"budget"`
	CPMValue  decimal.Decimal       `json:"cpmValue"`
	StartDate time.Time             `json:"startDate"`
	EndDate   time.Time             `json:"endDate"`
}

// PerformanceResp bundles the forecast report with the aggregation policy
// that produced it and an overview of all metric rows. Overview.CPC is the
// budget spread over all clicks.
type PerformanceResp struct {
	Campaign    CampaignHeader           `json:"campaign"`
	Report      domain.PerformanceReport `json:"report"`
	Policy      domain.AggregationPolicy `json:"aggregation"`
	Overview    domain.MetricSummary     `json:"overview"`
	GeneratedAt time.Time                `json:"generatedAt"`
}

// PayoutRow is one creator's line on the payout board. Delivered.CPC is the
// payout spread over the creator's published clicks. Malformed rows pay zero
// because the campaign CPM or the policy could not be evaluated.
type PayoutRow struct {
	ApplicationID  uuid.UUID                `json:"applicationId"`
	CreatorID      uuid.UUID                `json:"creatorId"`
	Username       string                   `json:"username"`
	Tier           domain.Tier              `json:"tier"`
	Status         domain.ApplicationStatus `json:"status"`
	ProposedAmount decimal.Decimal          `json:"proposedAmount"`
	Delivered      domain.MetricSummary     `json:"delivered"`
	Payout         decimal.Decimal          `json:"payout"`
	Malformed      bool                     `json:"malformed"`
}

// PayoutsResp lists payouts for a campaign. PolicyID is nil when the
// campaign pays plain CPM.
type PayoutsResp struct {
	Campaign CampaignHeader  `json:"campaign"`
	PolicyID *uuid.UUID      `json:"policyId,omitempty"`
	Rows     []PayoutRow     `json:"rows"`
	Total    decimal.Decimal `json:"total"`
}

// QuoteReq holds ad hoc payout terms. Policy is optional.
type QuoteReq struct {
	CPMValue             string
	DeliveredImpressions int64
	Tier                 domain.Tier
	Policy               *domain.MonetizationPolicy
}

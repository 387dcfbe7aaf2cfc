package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kolpay/internal/core/domain"
	"kolpay/internal/core/port"
)

// CampaignUseCase loads campaign snapshots from the repository and runs the
// payout and forecast calculators over them. It holds no state between
// calls and is safe for concurrent use.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger

	// aggregation decides how applications and metric rows are reduced
	// before forecasting.
	aggregation domain.AggregationPolicy

	// now is the clock used as the forecast reference instant.
	now func() time.Time
}

// NewCampaignUseCase creates a usecase over repo. A nil logger discards
// output.
func NewCampaignUseCase(repo port.CampaignRepository, aggregation domain.AggregationPolicy, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CampaignUseCase{
		repo:        repo,
		logger:      logger,
		aggregation: aggregation,
		now:         time.Now,
	}
}

// CampaignPerformance returns the pacing and forecast report of a campaign
// as of the current time.
func (u *CampaignUseCase) CampaignPerformance(ctx context.Context, id uuid.UUID) (*port.PerformanceResp, error) {
	snap, err := u.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	return &port.PerformanceResp{
		Campaign:    header(snap.Campaign),
		Report:      domain.ComputePerformance(*snap, now, u.aggregation),
		Policy:      u.aggregation,
		Overview:    domain.SummarizeApplications(snap.Applications, false).WithCost(domain.ParseAmount(snap.Campaign.Budget)),
		GeneratedAt: now,
	}, nil
}

// CampaignPayouts computes every creator's payout on a campaign. The first
// policy attached to the campaign applies; without one creators are paid
// plain CPM. Rows are ordered by delivered impressions, highest first.
func (u *CampaignUseCase) CampaignPayouts(ctx context.Context, id uuid.UUID) (*port.PayoutsResp, error) {
	snap, err := u.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	policy, err := u.repo.GetCampaignPolicy(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign policy: %w", err)
	}

	resp := &port.PayoutsResp{
		Campaign: header(snap.Campaign),
		Rows:     make([]port.PayoutRow, 0, len(snap.Applications)),
		Total:    decimal.Zero,
	}
	if policy != nil {
		resp.PolicyID = &policy.ID
	}
	for _, app := range snap.Applications {
		payout := domain.ApplicationPayout(snap.Campaign, policy, app)
		if payout.Malformed {
			u.logger.DebugContext(ctx, "malformed payout terms, paying zero",
				slog.String("application_id", app.ID.String()),
				slog.String("tier", string(app.Creator.Tier)))
		}
		row := port.PayoutRow{
			ApplicationID:  app.ID,
			CreatorID:      app.Creator.ID,
			Username:       app.Creator.Username,
			Tier:           app.Creator.Tier,
			Status:         app.Status,
			ProposedAmount: domain.ParseAmount(app.ProposedAmount),
			Delivered:      domain.SummarizeMetrics(app.Metrics, true).WithCost(payout.Payout),
			Payout:         payout.Payout,
			Malformed:      payout.Malformed,
		}
		resp.Rows = append(resp.Rows, row)
		resp.Total = resp.Total.Add(row.Payout)
	}
	sort.SliceStable(resp.Rows, func(i, j int) bool {
		return resp.Rows[i].Delivered.Impressions > resp.Rows[j].Delivered.Impressions
	})
	return resp, nil
}

// QuotePayout computes a payout for the given terms without storage access.
func (u *CampaignUseCase) QuotePayout(_ context.Context, req port.QuoteReq) (*domain.PayoutBreakdown, error) {
	if req.DeliveredImpressions < 0 {
		return nil, fmt.Errorf("%w: delivered impressions must not be negative", port.ErrInvalidQuote)
	}
	if req.Tier != "" && !req.Tier.Valid() {
		return nil, fmt.Errorf("%w: unknown tier %q", port.ErrInvalidQuote, req.Tier)
	}
	b := domain.ComputePayoutBreakdown(req.CPMValue, req.DeliveredImpressions, req.Policy.TermsFor(req.Tier))
	return &b, nil
}

func (u *CampaignUseCase) snapshot(ctx context.Context, id uuid.UUID) (*domain.CampaignSnapshot, error) {
	camp, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}
	apps, err := u.repo.ListApplications(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	snap := &domain.CampaignSnapshot{Campaign: *camp, Applications: apps}
	u.logMalformed(ctx, snap)
	return snap, nil
}

// logMalformed reports stored amounts that the calculators will read as
// zero. Blank proposed amounts are legitimate and not reported.
func (u *CampaignUseCase) logMalformed(ctx context.Context, snap *domain.CampaignSnapshot) {
	bad := func(field, value string, id uuid.UUID) {
		u.logger.DebugContext(ctx, "malformed amount treated as zero",
			slog.String("field", field),
			slog.String("value", value),
			slog.String("id", id.String()))
	}
	c := snap.Campaign
	if !domain.IsAmount(c.Budget) {
		bad("campaign.budget", c.Budget, c.ID)
	}
	if !domain.IsAmount(c.CPMValue) {
		bad("campaign.cpm_value", c.CPMValue, c.ID)
	}
	for _, a := range snap.Applications {
		if strings.TrimSpace(a.ProposedAmount) != "" && !domain.IsAmount(a.ProposedAmount) {
			bad("application.proposed_amount", a.ProposedAmount, a.ID)
		}
		for _, m := range a.Metrics {
			if !domain.IsAmount(m.Engagement) {
				bad("metric.engagement", m.Engagement, m.ID)
			}
		}
	}
}

func header(c domain.Campaign) port.CampaignHeader {
	return port.CampaignHeader{
		ID:        c.ID,
		Name:      c.Name,
		Status:    c.Status,
		Budget:    domain.ParseAmount(c.Budget),
		CPMValue:  domain.ParseAmount(c.CPMValue),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}
}

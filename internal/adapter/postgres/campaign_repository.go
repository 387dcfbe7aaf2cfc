package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kolpay/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Numeric columns are read as text so amounts reach the domain
// exactly as stored.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `
        SELECT id, project_id, name, description, budget::text, cpm_value::text,
               start_date, end_date, status, created_at, updated_at
        FROM campaigns
        WHERE id = $1`, id).
		Scan(&c.ID, &c.ProjectID, &c.Name, &c.Description, &c.Budget, &c.CPMValue,
			&c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListApplications returns the applications of a campaign with their
// creators and metric rows.
func (r *CampaignRepository) ListApplications(ctx context.Context, campaignID uuid.UUID) ([]domain.CampaignApplication, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT a.id, a.campaign_id, a.status, COALESCE(a.proposal, ''),
               COALESCE(a.proposed_amount::text, ''), a.created_at,
               cp.id, COALESCE(u.username, ''), cp.tier
        FROM campaign_applications a
        JOIN creator_profiles cp ON cp.id = a.creator_id
        JOIN users u ON u.id = cp.user_id
        WHERE a.campaign_id = $1
        ORDER BY a.created_at, a.id`, campaignID)
	if err != nil {
		return nil, err
	}
	apps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignApplication, error) {
		var a domain.CampaignApplication
		err := row.Scan(
			&a.ID,
			&a.CampaignID,
			&a.Status,
			&a.Proposal,
			&a.ProposedAmount,
			&a.CreatedAt,
			&a.Creator.ID,
			&a.Creator.Username,
			&a.Creator.Tier,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan applications: %w", err)
	}
	if len(apps) == 0 {
		return apps, nil
	}

	metrics, err := r.listMetrics(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		apps[i].Metrics = metrics[apps[i].ID]
	}
	return apps, nil
}

// listMetrics returns the campaign's metric rows grouped by application.
// Rows not linked to an application are dropped.
func (r *CampaignRepository) listMetrics(ctx context.Context, campaignID uuid.UUID) (map[uuid.UUID][]domain.CampaignMetric, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, application_id, impressions, clicks, conversions, engagement::text,
               COALESCE(post_url, ''), COALESCE(platform, ''), created_at
        FROM campaign_metrics
        WHERE campaign_id = $1 AND application_id IS NOT NULL
        ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	type linkedMetric struct {
		applicationID uuid.UUID
		metric        domain.CampaignMetric
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (linkedMetric, error) {
		var lm linkedMetric
		err := row.Scan(
			&lm.metric.ID,
			&lm.applicationID,
			&lm.metric.Impressions,
			&lm.metric.Clicks,
			&lm.metric.Conversions,
			&lm.metric.Engagement,
			&lm.metric.PostURL,
			&lm.metric.Platform,
			&lm.metric.CreatedAt,
		)
		return lm, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan metrics: %w", err)
	}
	byApp := make(map[uuid.UUID][]domain.CampaignMetric)
	for _, lm := range raw {
		byApp[lm.applicationID] = append(byApp[lm.applicationID], lm.metric)
	}
	return byApp, nil
}

// GetCampaignPolicy returns the earliest policy attached to the campaign with
// its bonuses, or nil when the campaign has none.
func (r *CampaignRepository) GetCampaignPolicy(ctx context.Context, campaignID uuid.UUID) (*domain.MonetizationPolicy, error) {
	var p domain.MonetizationPolicy
	err := r.pool.QueryRow(ctx, `
        SELECT p.id, p.name, COALESCE(p.description, ''), p.base_rate_multiplier::text
        FROM campaign_monetization_policies cmp
        JOIN monetization_policies p ON p.id = cmp.policy_id
        WHERE cmp.campaign_id = $1
        ORDER BY cmp.created_at, cmp.id
        LIMIT 1`, campaignID).
		Scan(&p.ID, &p.Name, &p.Description, &p.BaseRateMultiplier)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	batch := &pgx.Batch{}
	batch.Queue(`SELECT impression_goal, bonus_amount::text FROM milestone_bonus WHERE policy_id = $1 ORDER BY impression_goal`, p.ID).
		Query(func(rows pgx.Rows) error {
			var err error
			p.MilestoneBonuses, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MilestoneBonus, error) {
				var m domain.MilestoneBonus
				return m, row.Scan(&m.ImpressionGoal, &m.BonusAmount)
			})
			return err
		})
	batch.Queue(`SELECT tier, bonus_percentage::text FROM kol_tier_bonus WHERE policy_id = $1 ORDER BY tier`, p.ID).
		Query(func(rows pgx.Rows) error {
			var err error
			p.TierBonuses, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.KolTierBonus, error) {
				var b domain.KolTierBonus
				return b, row.Scan(&b.Tier, &b.BonusPercentage)
			})
			return err
		})
	if err = r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("load policy bonuses: %w", err)
	}
	return &p, nil
}

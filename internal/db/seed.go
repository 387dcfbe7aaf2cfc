package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Demo identifiers are derived from fixed names so that seeding twice
// updates nothing.
var (
	demoNamespace = uuid.MustParse("5f7d3c2a-1b4e-4c8d-9a6f-0e2d4b6c8a10")
	DemoCampaign  = demoID("campaign:launch-week")
	demoProject   = demoID("project:demo")
	demoOwner     = demoID("user:owner")
	demoPolicy    = demoID("policy:launch-boost")
)

func demoID(name string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte(name))
}

type stmt struct {
	sql  string
	args []any
}

type demoCreator struct {
	name     string
	tier     string
	status   string
	proposed string
	posts    []demoPost
}

type demoPost struct {
	impressions, clicks, conversions int64
	engagement                       string
	url                              string
	platform                         string
}

var demoCreators = []demoCreator{
	{"aurora", "GOLD", "approved", "3500", []demoPost{
		{32000, 640, 48, "4.2", "https://x.com/aurora/status/1", "twitter"},
		{18000, 210, 15, "3.1", "https://youtube.com/watch?v=aurora", "youtube"},
	}},
	{"basil", "SILVER", "approved", "1800", []demoPost{
		{12500, 150, 9, "2.8", "https://instagram.com/p/basil", "instagram"},
		{4000, 0, 0, "0", "", ""},
	}},
	{"cosmo", "BRONZE", "pending", "700", nil},
	{"dune", "SILVER", "rejected", "", []demoPost{
		{2500, 20, 1, "1.5", "https://tiktok.com/@dune/1", "tiktok"},
	}},
}

// Seed inserts a demo campaign with a monetization policy, creators,
// applications and metrics. It is idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		now := time.Now().UTC()
		start := now.AddDate(0, 0, -5)
		end := now.AddDate(0, 0, 25)

		stmts := []stmt{
			{`INSERT INTO users (id, address, username) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				[]any{demoOwner, "0xowner", "owner"}},
			{`INSERT INTO projects (id, name, description, owner_id) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
				[]any{demoProject, "Demo Project", "Seeded project", demoOwner}},
			{`INSERT INTO campaigns (id, project_id, name, description, budget, cpm_value, start_date, end_date, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active') ON CONFLICT DO NOTHING`,
				[]any{DemoCampaign, demoProject, "Launch Week", "Seeded campaign", "10000", "10", start, end}},
			{`INSERT INTO monetization_policies (id, name, description, base_rate_multiplier) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
				[]any{demoPolicy, "Launch Boost", "1.5x base with milestones", "1.5"}},
			{`INSERT INTO campaign_monetization_policies (id, campaign_id, policy_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				[]any{demoID("cmp:launch"), DemoCampaign, demoPolicy}},
		}
		for _, goal := range []struct {
			impressions int64
			bonus       string
		}{{10000, "20"}, {50000, "50"}} {
			stmts = append(stmts, stmt{`INSERT INTO milestone_bonus (id, policy_id, impression_goal, bonus_amount) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
				[]any{demoID("milestone:" + goal.bonus), demoPolicy, goal.impressions, goal.bonus}})
		}
		for tier, pct := range map[string]string{"BRONZE": "2.5", "SILVER": "5", "GOLD": "10"} {
			stmts = append(stmts, stmt{`INSERT INTO kol_tier_bonus (id, policy_id, tier, bonus_percentage) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
				[]any{demoID("tier:" + tier), demoPolicy, tier, pct}})
		}
		for _, s := range stmts {
			if _, err := tx.Exec(ctx, s.sql, s.args...); err != nil {
				return err
			}
		}

		for _, c := range demoCreators {
			if err := seedCreator(ctx, tx, c); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedCreator(ctx context.Context, tx pgx.Tx, c demoCreator) error {
	userID := demoID("user:" + c.name)
	creatorID := demoID("creator:" + c.name)
	appID := demoID("application:" + c.name)

	var proposed any
	if c.proposed != "" {
		proposed = c.proposed
	}
	if _, err := tx.Exec(ctx, `INSERT INTO users (id, address, username) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		userID, "0x"+c.name, c.name); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO creator_profiles (id, user_id, tier) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		creatorID, userID, c.tier); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO campaign_applications (id, campaign_id, creator_id, status, proposal, proposed_amount)
VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING`,
		appID, DemoCampaign, creatorID, c.status, "Seeded proposal", proposed); err != nil {
		return err
	}
	for i, p := range c.posts {
		var url, platform any
		if p.url != "" {
			url, platform = p.url, p.platform
		}
		_, err := tx.Exec(ctx, `INSERT INTO campaign_metrics
(id, campaign_id, application_id, impressions, clicks, conversions, engagement, post_url, platform)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT DO NOTHING`,
			demoID(fmt.Sprintf("metric:%s:%d", c.name, i)), DemoCampaign, appID,
			p.impressions, p.clicks, p.conversions, p.engagement, url, platform)
		if err != nil {
			return err
		}
	}
	return nil
}

package configs

import (
	"fmt"
	"strings"

	"kolpay/internal/core/domain"
)

// Forecast selects how campaign snapshots are aggregated before the
// performance forecast. The defaults keep the historical behaviour: every
// application's proposed amount counts as spend and engagement percentages
// are summed across posts.
type Forecast struct {
	// SpendBasis is "all" or "approved".
	SpendBasis string `env:"SPEND_BASIS" envDefault:"all"`
	// Engagement is "sum" or "mean".
	Engagement string `env:"ENGAGEMENT" envDefault:"sum"`
	// PublishedOnly drops metric rows without a post URL.
	PublishedOnly bool `env:"PUBLISHED_ONLY" envDefault:"false"`
}

// Policy validates the section and converts it into a domain policy.
func (c Forecast) Policy() (domain.AggregationPolicy, error) {
	p := domain.AggregationPolicy{PublishedOnly: c.PublishedOnly}

	switch basis := domain.SpendBasis(strings.ToLower(c.SpendBasis)); basis {
	case domain.SpendAllApplications, domain.SpendApprovedApplications:
		p.SpendBasis = basis
	default:
		return p, fmt.Errorf("unknown spend basis %q", c.SpendBasis)
	}

	switch agg := domain.EngagementAggregation(strings.ToLower(c.Engagement)); agg {
	case domain.EngagementSum, domain.EngagementMean:
		p.Engagement = agg
	default:
		return p, fmt.Errorf("unknown engagement aggregation %q", c.Engagement)
	}
	return p, nil
}

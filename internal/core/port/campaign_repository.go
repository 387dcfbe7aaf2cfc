package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"kolpay/internal/core/domain"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidQuote     = errors.New("invalid payout quote")
)

// CampaignRepository defines the read side of campaign storage. It is an
// outbound port in hexagonal architecture. Lookups of unknown ids return
// nil without an error.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListApplications returns every application made to the campaign,
	// each with its creator profile and metric rows, in creation order.
	ListApplications(ctx context.Context, campaignID uuid.UUID) ([]domain.CampaignApplication, error)
	// GetCampaignPolicy returns the first monetization policy attached to
	// the campaign together with its milestone and tier bonuses.
	GetCampaignPolicy(ctx context.Context, campaignID uuid.UUID) (*domain.MonetizationPolicy, error)
}

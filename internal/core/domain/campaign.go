package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is informational only; the calculators never branch on it.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// Campaign represents a marketing campaign run by a project owner.
// Budget and CPMValue are kept as decimal strings, exactly as stored, and are
// parsed only when the calculators need them.
type Campaign struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description string
	Budget      string // total budget
	CPMValue    string // cost per thousand impressions
	StartDate   time.Time
	EndDate     time.Time
	Status      CampaignStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CampaignSnapshot is the read-only view of a campaign and every application
// made to it, as fetched by the storage layer for a single computation.
type CampaignSnapshot struct {
	Campaign     Campaign
	Applications []CampaignApplication
}

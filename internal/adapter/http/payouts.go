package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"kolpay/internal/core/domain"
	"kolpay/internal/core/port"
)

type payoutRowResponse struct {
	ApplicationID  uuid.UUID                `json:"applicationId"`
	CreatorID      uuid.UUID                `json:"creatorId"`
	Username       string                   `json:"username"`
	Tier           domain.Tier              `json:"tier"`
	Status         domain.ApplicationStatus `json:"status"`
	ProposedAmount money                    `json:"proposedAmount"`
	Delivered      summaryResponse          `json:"delivered"`
	Payout         money                    `json:"payout"`
	Malformed      bool                     `json:"malformed"`
}

type payoutsResponse struct {
	Campaign headerResponse      `json:"campaign"`
	PolicyID *uuid.UUID          `json:"policyId,omitempty"`
	Rows     []payoutRowResponse `json:"rows"`
	Total    money               `json:"total"`
}

// handleCampaignPayouts returns the payout board of a campaign.
func (h *Handler) handleCampaignPayouts(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	resp, err := h.svc.CampaignPayouts(r.Context(), id)
	if err != nil {
		h.fail(w, r, "campaign payouts error", err)
		return
	}
	out := payoutsResponse{
		Campaign: toHeaderResponse(resp.Campaign),
		PolicyID: resp.PolicyID,
		Rows:     make([]payoutRowResponse, 0, len(resp.Rows)),
		Total:    money(resp.Total),
	}
	for _, row := range resp.Rows {
		out.Rows = append(out.Rows, payoutRowResponse{
			ApplicationID:  row.ApplicationID,
			CreatorID:      row.CreatorID,
			Username:       row.Username,
			Tier:           row.Tier,
			Status:         row.Status,
			ProposedAmount: money(row.ProposedAmount),
			Delivered:      toSummaryResponse(row.Delivered),
			Payout:         money(row.Payout),
			Malformed:      row.Malformed,
		})
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

type quoteRequest struct {
	CPMValue             string         `json:"cpmValue"`
	DeliveredImpressions int64          `json:"deliveredImpressions"`
	Tier                 domain.Tier    `json:"tier"`
	Policy               *policyRequest `json:"policy"`
}

type policyRequest struct {
	BaseRateMultiplier string `json:"baseRateMultiplier"`
	MilestoneBonus     []struct {
		ImpressionGoal int64  `json:"impressionGoal"`
		BonusAmount    string `json:"bonusAmount"`
	} `json:"milestoneBonus"`
	KolTierBonus []struct {
		Tier            domain.Tier `json:"tier"`
		BonusPercentage string      `json:"bonusPercentage"`
	} `json:"kolTierBonus"`
}

func (p *policyRequest) toDomain() *domain.MonetizationPolicy {
	if p == nil {
		return nil
	}
	policy := &domain.MonetizationPolicy{BaseRateMultiplier: p.BaseRateMultiplier}
	for _, m := range p.MilestoneBonus {
		policy.MilestoneBonuses = append(policy.MilestoneBonuses, domain.MilestoneBonus{
			ImpressionGoal: m.ImpressionGoal,
			BonusAmount:    m.BonusAmount,
		})
	}
	for _, b := range p.KolTierBonus {
		policy.TierBonuses = append(policy.TierBonuses, domain.KolTierBonus{
			Tier:            b.Tier,
			BonusPercentage: b.BonusPercentage,
		})
	}
	return policy
}

// handlePayoutQuote computes a payout from terms posted in the body. The
// body follows the stored policy shape, with amounts as decimal strings.
// Malformed or out of range amounts void the payout; malformed JSON
// produces 400.
func (h *Handler) handlePayoutQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	b, err := h.svc.QuotePayout(r.Context(), port.QuoteReq{
		CPMValue:             req.CPMValue,
		DeliveredImpressions: req.DeliveredImpressions,
		Tier:                 req.Tier,
		Policy:               req.Policy.toDomain(),
	})
	if err != nil {
		h.fail(w, r, "payout quote error", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"payout":    money(b.Payout),
		"breakdown": toBreakdownResponse(*b),
	})
}

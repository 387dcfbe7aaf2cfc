package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"kolpay/internal/core/domain"
	"kolpay/internal/core/port"
)

type headerResponse struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Status    domain.CampaignStatus `json:"status"`
	Budget    money                 `json:"budget"`
	CPMValue  money                 `json:"cpmValue"`
	StartDate time.Time             `json:"startDate"`
	EndDate   time.Time             `json:"endDate"`
}

func toHeaderResponse(c port.CampaignHeader) headerResponse {
	return headerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Status:    c.Status,
		Budget:    money(c.Budget),
		CPMValue:  money(c.CPMValue),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}
}

type performanceResponse struct {
	Campaign    headerResponse           `json:"campaign"`
	Report      reportResponse           `json:"report"`
	Pacing      string                   `json:"pacing"`
	OverBudget  bool                     `json:"overBudget"`
	Aggregation domain.AggregationPolicy `json:"aggregation"`
	Overview    summaryResponse          `json:"overview"`
	GeneratedAt time.Time                `json:"generatedAt"`
}

// handleCampaignPerformance returns the budget pacing and forecast report of
// the campaign in the {id} path parameter. Unknown campaigns produce 404.
func (h *Handler) handleCampaignPerformance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	resp, err := h.svc.CampaignPerformance(r.Context(), id)
	if err != nil {
		h.fail(w, r, "campaign performance error", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, performanceResponse{
		Campaign:    toHeaderResponse(resp.Campaign),
		Report:      toReportResponse(resp.Report),
		Pacing:      resp.Report.Pacing(),
		OverBudget:  resp.Report.OverBudget(),
		Aggregation: resp.Policy,
		Overview:    toSummaryResponse(resp.Overview),
		GeneratedAt: resp.GeneratedAt,
	})
}

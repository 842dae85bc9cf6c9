package dto

import (
	"time"

	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// SummaryResponse represents a monthly summary.
type SummaryResponse struct {
	Month                string     `json:"month"`
	Label                string     `json:"label"`
	TotalIncome          float64    `json:"totalIncome"`
	TotalExpenses        float64    `json:"totalExpenses"`
	Balance              float64    `json:"balance"`
	Saving               int        `json:"saving"`
	SavingBalance        float64    `json:"savingBalance"`
	RecommendedSavings   float64    `json:"recommendedSavings"`
	SavingRate           int        `json:"savingRate"`
	PreviousMonthBalance float64    `json:"previousMonthBalance"`
	LastUpdated          *time.Time `json:"lastUpdated"`
}

// UpdateSavingRequest represents the request body for changing the saving percent.
type UpdateSavingRequest struct {
	Saving *int   `json:"saving" binding:"required"`
	Month  string `json:"month"`
}

// UpdateSavingResponse is returned after the saving percent changes.
type UpdateSavingResponse struct {
	Saving             int     `json:"saving"`
	RecommendedSavings float64 `json:"recommendedSavings"`
	SavingRate         int     `json:"savingRate"`
}

// ToSummaryResponse converts a domain MonthlySummary to its DTO.
func ToSummaryResponse(s *entity.MonthlySummary) SummaryResponse {
	return SummaryResponse{
		Month:                s.Month.String(),
		Label:                s.Label,
		TotalIncome:          s.TotalIncome.InexactFloat64(),
		TotalExpenses:        s.TotalExpenses.InexactFloat64(),
		Balance:              s.Balance.InexactFloat64(),
		Saving:               s.Saving,
		SavingBalance:        s.SavingBalance.InexactFloat64(),
		RecommendedSavings:   s.RecommendedSavings.InexactFloat64(),
		SavingRate:           s.SavingRate,
		PreviousMonthBalance: s.PreviousMonthBalance.InexactFloat64(),
		LastUpdated:          s.LastUpdated,
	}
}

// ToUpdateSavingResponse converts the saving rate use case output.
func ToUpdateSavingResponse(output *summary.UpdateSavingRateOutput) UpdateSavingResponse {
	return UpdateSavingResponse{
		Saving:             output.Saving,
		RecommendedSavings: output.RecommendedSavings.InexactFloat64(),
		SavingRate:         output.SavingRate,
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/usecase/ledger"
	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// CreateRecordRequest represents the request body for recording a transaction.
// Presence and type of the required fields are checked by the use case.
type CreateRecordRequest struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory" binding:"max=255"`
	Amount      *float64 `json:"amount"`
	Note        string   `json:"note" binding:"max=1000"`
	Saving      *int     `json:"saving"`
}

// AmountDecimal returns the amount as a decimal, or nil when absent.
func (r CreateRecordRequest) AmountDecimal() *decimal.Decimal {
	if r.Amount == nil {
		return nil
	}
	amount := decimal.NewFromFloat(*r.Amount)
	return &amount
}

// RecordResponse represents a single ledger record.
type RecordResponse struct {
	ID          string    `json:"id"`
	Month       string    `json:"month"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	Amount      float64   `json:"amount"`
	Note        string    `json:"note"`
	Saving      int       `json:"saving"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateRecordResponse is returned after a record is stored.
type CreateRecordResponse struct {
	TransactionID      string         `json:"transactionId"`
	Record             RecordResponse `json:"record"`
	CurrentBalance     float64        `json:"currentBalance"`
	RecommendedSavings float64        `json:"recommendedSavings"`
	SavingRate         int            `json:"savingRate"`
	SavingBalance      float64        `json:"savingBalance"`
}

// ListRecordsResponse is one page of a month's records.
type ListRecordsResponse struct {
	Summary      SummaryResponse  `json:"summary"`
	Transactions []RecordResponse `json:"transactions"`
	LastCursor   *string          `json:"lastCursor"`
}

// DeleteRecordResponse is returned after a record is removed.
type DeleteRecordResponse struct {
	DeletedTransactionID string          `json:"deletedTransactionId"`
	UpdatedSummary       SummaryResponse `json:"updatedSummary"`
}

// ToRecordResponse converts a domain Record to its DTO.
func ToRecordResponse(r *entity.Record) RecordResponse {
	return RecordResponse{
		ID:          r.ID.String(),
		Month:       r.Month.String(),
		Type:        string(r.Type),
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Amount:      r.Amount.InexactFloat64(),
		Note:        r.Note,
		Saving:      r.Saving,
		Date:        r.Date,
		CreatedAt:   r.CreatedAt,
	}
}

// ToCreateRecordResponse converts the create use case output.
func ToCreateRecordResponse(output *ledger.CreateRecordOutput) CreateRecordResponse {
	s := output.Summary
	return CreateRecordResponse{
		TransactionID:      output.Record.ID.String(),
		Record:             ToRecordResponse(output.Record),
		CurrentBalance:     s.Balance.InexactFloat64(),
		RecommendedSavings: s.RecommendedSavings.InexactFloat64(),
		SavingRate:         s.SavingRate,
		SavingBalance:      s.SavingBalance.InexactFloat64(),
	}
}

// ToListRecordsResponse converts the list use case output.
func ToListRecordsResponse(output *ledger.ListRecordsOutput) ListRecordsResponse {
	records := make([]RecordResponse, 0, len(output.Records))
	for _, r := range output.Records {
		records = append(records, ToRecordResponse(r))
	}

	var cursor *string
	if output.LastCursor != nil {
		id := output.LastCursor.String()
		cursor = &id
	}

	return ListRecordsResponse{
		Summary:      ToSummaryResponse(output.Summary),
		Transactions: records,
		LastCursor:   cursor,
	}
}

// ToDeleteRecordResponse converts the delete use case output.
func ToDeleteRecordResponse(output *ledger.DeleteRecordOutput) DeleteRecordResponse {
	return DeleteRecordResponse{
		DeletedTransactionID: output.DeletedRecordID.String(),
		UpdatedSummary:       ToSummaryResponse(output.Summary),
	}
}

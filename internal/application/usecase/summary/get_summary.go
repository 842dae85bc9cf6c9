package summary

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// GetSummaryInput represents the input for reading a month's summary.
type GetSummaryInput struct {
	CallerID uuid.UUID
	UserID   string
	Month    string
}

// GetSummaryOutput represents the output of reading a month's summary.
type GetSummaryOutput struct {
	Summary *entity.MonthlySummary
}

// GetSummaryUseCase returns a month's summary without listing its records.
type GetSummaryUseCase struct {
	reader *Reader
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(reader *Reader) *GetSummaryUseCase {
	return &GetSummaryUseCase{reader: reader}
}

// Execute reads the summary, reporting zeros for months without records.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	userID, err := guard.AuthorizeOwner(input.CallerID, input.UserID)
	if err != nil {
		return nil, err
	}

	month, err := guard.ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	s, err := uc.reader.Read(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	return &GetSummaryOutput{Summary: s}, nil
}

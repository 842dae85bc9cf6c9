package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// DistributionInput represents the input for a per-category distribution.
type DistributionInput struct {
	MonthInput
	Type entity.RecordType
}

// DistributionOutput holds parallel category and amount series.
type DistributionOutput struct {
	Categories []string
	Amounts    []decimal.Decimal
	Total      decimal.Decimal
}

// GetDistributionUseCase groups one record type of a month by category.
type GetDistributionUseCase struct {
	repo AnalyticsRepository
}

// NewGetDistributionUseCase creates a new GetDistributionUseCase instance.
func NewGetDistributionUseCase(repo AnalyticsRepository) *GetDistributionUseCase {
	return &GetDistributionUseCase{repo: repo}
}

// Execute returns the distribution of income or expenses across categories.
func (uc *GetDistributionUseCase) Execute(ctx context.Context, input DistributionInput) (*DistributionOutput, error) {
	userID, err := guard.AuthorizeOwner(input.CallerID, input.UserID)
	if err != nil {
		return nil, err
	}

	month, err := guard.ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidRecordType,
			"type must be income or expenses",
			domainerror.ErrInvalidRecordType,
		)
	}

	totals, err := uc.repo.SumByCategory(ctx, userID, month, input.Type)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to fetch distribution")
	}

	output := &DistributionOutput{
		Categories: make([]string, 0, len(totals)),
		Amounts:    make([]decimal.Decimal, 0, len(totals)),
		Total:      sumTotals(totals),
	}
	for _, t := range totals {
		output.Categories = append(output.Categories, t.Category)
		output.Amounts = append(output.Amounts, t.Amount)
	}

	return output, nil
}

package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// TrendPoint is one record plotted on the month's trend.
type TrendPoint struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	SubCategory string
}

// FinancialTrendOutput represents the month's income and expense series.
type FinancialTrendOutput struct {
	Income        []TrendPoint
	Expenses      []TrendPoint
	Savings       int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetCashFlow   decimal.Decimal
}

// GetFinancialTrendUseCase splits a month's records into income and expense series.
type GetFinancialTrendUseCase struct {
	repo   AnalyticsRepository
	reader *summary.Reader
}

// NewGetFinancialTrendUseCase creates a new GetFinancialTrendUseCase instance.
func NewGetFinancialTrendUseCase(repo AnalyticsRepository, reader *summary.Reader) *GetFinancialTrendUseCase {
	return &GetFinancialTrendUseCase{
		repo:   repo,
		reader: reader,
	}
}

// Execute builds the trend. Totals come from the month summary.
func (uc *GetFinancialTrendUseCase) Execute(ctx context.Context, input MonthInput) (*FinancialTrendOutput, error) {
	userID, err := guard.AuthorizeOwner(input.CallerID, input.UserID)
	if err != nil {
		return nil, err
	}

	month, err := guard.ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	records, err := uc.repo.ListMonthRecords(ctx, userID, month)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to fetch financial trend")
	}

	monthSummary, err := uc.reader.Read(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	output := &FinancialTrendOutput{
		Income:        []TrendPoint{},
		Expenses:      []TrendPoint{},
		Savings:       monthSummary.Saving,
		TotalIncome:   monthSummary.TotalIncome,
		TotalExpenses: monthSummary.TotalExpenses,
		NetCashFlow:   monthSummary.TotalIncome.Sub(monthSummary.TotalExpenses),
	}

	for _, r := range records {
		point := TrendPoint{
			Date:        r.Date,
			Amount:      r.Amount,
			Category:    r.Category,
			SubCategory: r.SubCategory,
		}
		if r.Type == entity.RecordTypeIncome {
			output.Income = append(output.Income, point)
		} else {
			output.Expenses = append(output.Expenses, point)
		}
	}

	return output, nil
}

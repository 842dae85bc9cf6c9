package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// MonthlyBreakdownOutput represents a month's totals recomputed from records.
type MonthlyBreakdownOutput struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetCashFlow        decimal.Decimal
	Savings            decimal.Decimal
	RecommendedSavings decimal.Decimal
	IncomeBreakdown    []CategoryTotal
	ExpensesBreakdown  []CategoryTotal
}

// GetMonthlyBreakdownUseCase reports category breakdowns of a month.
type GetMonthlyBreakdownUseCase struct {
	repo   AnalyticsRepository
	reader *summary.Reader
}

// NewGetMonthlyBreakdownUseCase creates a new GetMonthlyBreakdownUseCase instance.
func NewGetMonthlyBreakdownUseCase(repo AnalyticsRepository, reader *summary.Reader) *GetMonthlyBreakdownUseCase {
	return &GetMonthlyBreakdownUseCase{
		repo:   repo,
		reader: reader,
	}
}

// Execute sums the month's records per category. Savings figures come from
// the month summary.
func (uc *GetMonthlyBreakdownUseCase) Execute(ctx context.Context, input MonthInput) (*MonthlyBreakdownOutput, error) {
	userID, err := guard.AuthorizeOwner(input.CallerID, input.UserID)
	if err != nil {
		return nil, err
	}

	month, err := guard.ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	income, err := uc.repo.SumByCategory(ctx, userID, month, entity.RecordTypeIncome)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to fetch income breakdown")
	}

	expenses, err := uc.repo.SumByCategory(ctx, userID, month, entity.RecordTypeExpenses)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to fetch expenses breakdown")
	}

	monthSummary, err := uc.reader.Read(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	totalIncome := sumTotals(income)
	totalExpenses := sumTotals(expenses)

	return &MonthlyBreakdownOutput{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetCashFlow:        totalIncome.Sub(totalExpenses),
		Savings:            monthSummary.SavingBalance,
		RecommendedSavings: monthSummary.RecommendedSavings,
		IncomeBreakdown:    income,
		ExpensesBreakdown:  expenses,
	}, nil
}

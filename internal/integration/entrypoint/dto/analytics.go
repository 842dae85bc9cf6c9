package dto

import (
	"time"

	"github.com/finance-tracker/wallet/internal/application/usecase/analytics"
)

// TrendPointResponse is a single record in the financial trend.
type TrendPointResponse struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
}

// FinancialTrendResponse lists the month's income and expenses.
type FinancialTrendResponse struct {
	Income        []TrendPointResponse `json:"income"`
	Expenses      []TrendPointResponse `json:"expenses"`
	Savings       int                  `json:"savings"`
	TotalIncome   float64              `json:"totalIncome"`
	TotalExpenses float64              `json:"totalExpenses"`
	NetCashFlow   float64              `json:"netCashFlow"`
}

// DistributionResponse holds per-category totals as parallel arrays.
type DistributionResponse struct {
	Categories []string  `json:"categories"`
	Amounts    []float64 `json:"amounts"`
	Total      float64   `json:"total"`
}

// CategoryTotalResponse is the total amount of one category.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// MonthlyBreakdownResponse is the month's financial summary report.
type MonthlyBreakdownResponse struct {
	TotalIncome        float64                 `json:"totalIncome"`
	TotalExpenses      float64                 `json:"totalExpenses"`
	NetCashFlow        float64                 `json:"netCashFlow"`
	Savings            float64                 `json:"savings"`
	RecommendedSavings float64                 `json:"recommendedSavings"`
	IncomeBreakdown    []CategoryTotalResponse `json:"incomeBreakdown"`
	ExpensesBreakdown  []CategoryTotalResponse `json:"expensesBreakdown"`
}

func toTrendPoints(points []analytics.TrendPoint) []TrendPointResponse {
	result := make([]TrendPointResponse, 0, len(points))
	for _, p := range points {
		result = append(result, TrendPointResponse{
			Date:        p.Date,
			Amount:      p.Amount.InexactFloat64(),
			Category:    p.Category,
			SubCategory: p.SubCategory,
		})
	}
	return result
}

func toCategoryTotals(totals []analytics.CategoryTotal) []CategoryTotalResponse {
	result := make([]CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		result = append(result, CategoryTotalResponse{
			Category: t.Category,
			Amount:   t.Amount.InexactFloat64(),
		})
	}
	return result
}

// ToFinancialTrendResponse converts the trend use case output.
func ToFinancialTrendResponse(output *analytics.FinancialTrendOutput) FinancialTrendResponse {
	return FinancialTrendResponse{
		Income:        toTrendPoints(output.Income),
		Expenses:      toTrendPoints(output.Expenses),
		Savings:       output.Savings,
		TotalIncome:   output.TotalIncome.InexactFloat64(),
		TotalExpenses: output.TotalExpenses.InexactFloat64(),
		NetCashFlow:   output.NetCashFlow.InexactFloat64(),
	}
}

// ToDistributionResponse converts the distribution use case output.
func ToDistributionResponse(output *analytics.DistributionOutput) DistributionResponse {
	amounts := make([]float64, 0, len(output.Amounts))
	for _, a := range output.Amounts {
		amounts = append(amounts, a.InexactFloat64())
	}
	categories := output.Categories
	if categories == nil {
		categories = []string{}
	}
	return DistributionResponse{
		Categories: categories,
		Amounts:    amounts,
		Total:      output.Total.InexactFloat64(),
	}
}

// ToMonthlyBreakdownResponse converts the breakdown use case output.
func ToMonthlyBreakdownResponse(output *analytics.MonthlyBreakdownOutput) MonthlyBreakdownResponse {
	return MonthlyBreakdownResponse{
		TotalIncome:        output.TotalIncome.InexactFloat64(),
		TotalExpenses:      output.TotalExpenses.InexactFloat64(),
		NetCashFlow:        output.NetCashFlow.InexactFloat64(),
		Savings:            output.Savings.InexactFloat64(),
		RecommendedSavings: output.RecommendedSavings.InexactFloat64(),
		IncomeBreakdown:    toCategoryTotals(output.IncomeBreakdown),
		ExpensesBreakdown:  toCategoryTotals(output.ExpensesBreakdown),
	}
}

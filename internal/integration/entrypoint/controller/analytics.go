package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/wallet/internal/application/usecase/analytics"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the monthly report endpoints.
type AnalyticsController struct {
	trendUseCase        *analytics.GetFinancialTrendUseCase
	distributionUseCase *analytics.GetDistributionUseCase
	breakdownUseCase    *analytics.GetMonthlyBreakdownUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	trendUseCase *analytics.GetFinancialTrendUseCase,
	distributionUseCase *analytics.GetDistributionUseCase,
	breakdownUseCase *analytics.GetMonthlyBreakdownUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		trendUseCase:        trendUseCase,
		distributionUseCase: distributionUseCase,
		breakdownUseCase:    breakdownUseCase,
	}
}

func monthInput(ctx *gin.Context) (analytics.MonthInput, bool) {
	caller, ok := callerID(ctx)
	if !ok {
		return analytics.MonthInput{}, false
	}
	return analytics.MonthInput{
		CallerID: caller,
		UserID:   ctx.Param("userId"),
		Month:    ctx.Param("month"),
	}, true
}

// Trend handles GET /users/:userId/analytics/:month/trend requests.
func (c *AnalyticsController) Trend(ctx *gin.Context) {
	input, ok := monthInput(ctx)
	if !ok {
		return
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialTrendResponse(output))
}

// Income handles GET /users/:userId/analytics/:month/income requests.
func (c *AnalyticsController) Income(ctx *gin.Context) {
	c.distribution(ctx, entity.RecordTypeIncome)
}

// Expenses handles GET /users/:userId/analytics/:month/expenses requests.
func (c *AnalyticsController) Expenses(ctx *gin.Context) {
	c.distribution(ctx, entity.RecordTypeExpenses)
}

func (c *AnalyticsController) distribution(ctx *gin.Context, recordType entity.RecordType) {
	input, ok := monthInput(ctx)
	if !ok {
		return
	}

	output, err := c.distributionUseCase.Execute(ctx.Request.Context(), analytics.DistributionInput{
		MonthInput: input,
		Type:       recordType,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDistributionResponse(output))
}

// Summary handles GET /users/:userId/analytics/:month/summary requests.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	input, ok := monthInput(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyBreakdownResponse(output))
}

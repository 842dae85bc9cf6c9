package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/dto"
)

// SummaryController handles monthly summary endpoints.
type SummaryController struct {
	getUseCase    *summary.GetSummaryUseCase
	savingUseCase *summary.UpdateSavingRateUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	getUseCase *summary.GetSummaryUseCase,
	savingUseCase *summary.UpdateSavingRateUseCase,
) *SummaryController {
	return &SummaryController{
		getUseCase:    getUseCase,
		savingUseCase: savingUseCase,
	}
}

// Get handles GET /users/:userId/summary/:month requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	caller, ok := callerID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), summary.GetSummaryInput{
		CallerID: caller,
		UserID:   ctx.Param("userId"),
		Month:    ctx.Param("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// UpdateSaving handles PATCH /users/:userId/saving requests.
func (c *SummaryController) UpdateSaving(ctx *gin.Context) {
	caller, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	output, err := c.savingUseCase.Execute(ctx.Request.Context(), summary.UpdateSavingRateInput{
		CallerID: caller,
		UserID:   ctx.Param("userId"),
		Month:    req.Month,
		Percent:  *req.Saving,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUpdateSavingResponse(output))
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/wallet/internal/application/usecase/ledger"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/dto"
)

// LedgerController handles transaction record endpoints.
type LedgerController struct {
	createUseCase *ledger.CreateRecordUseCase
	listUseCase   *ledger.ListRecordsUseCase
	deleteUseCase *ledger.DeleteRecordUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	createUseCase *ledger.CreateRecordUseCase,
	listUseCase *ledger.ListRecordsUseCase,
	deleteUseCase *ledger.DeleteRecordUseCase,
) *LedgerController {
	return &LedgerController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /users/:userId/transactions requests.
func (c *LedgerController) Create(ctx *gin.Context) {
	caller, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ledger.CreateRecordInput{
		CallerID:    caller,
		UserID:      ctx.Param("userId"),
		Type:        req.Type,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Amount:      req.AmountDecimal(),
		Note:        req.Note,
		Saving:      req.Saving,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateRecordResponse(output))
}

// List handles GET /users/:userId/transactions/:month requests.
func (c *LedgerController) List(ctx *gin.Context) {
	caller, ok := callerID(ctx)
	if !ok {
		return
	}

	input := ledger.ListRecordsInput{
		CallerID: caller,
		UserID:   ctx.Param("userId"),
		Month:    ctx.Param("month"),
		Cursor:   ctx.Query("startAfter"),
		Type:     ctx.Query("type"),
		RecordID: ctx.Query("recordId"),
	}

	if limitStr, present := ctx.GetQuery("limit"); present {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondError(ctx, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidPageSize,
				"limit must be a positive integer",
				domainerror.ErrInvalidPageSize,
			))
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListRecordsResponse(output))
}

// Delete handles DELETE /users/:userId/transactions/:month/records/:recordId requests.
func (c *LedgerController) Delete(ctx *gin.Context) {
	caller, ok := callerID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteRecordInput{
		CallerID: caller,
		UserID:   ctx.Param("userId"),
		Month:    ctx.Param("month"),
		RecordID: ctx.Param("recordId"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDeleteRecordResponse(output))
}

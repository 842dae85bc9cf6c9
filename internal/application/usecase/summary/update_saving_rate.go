package summary

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// UpdateSavingRateInput represents the input for changing a month's saving percent.
type UpdateSavingRateInput struct {
	CallerID uuid.UUID
	UserID   string
	// Month is optional and defaults to the current UTC month.
	Month   string
	Percent int
}

// UpdateSavingRateOutput represents the output of a saving percent change.
type UpdateSavingRateOutput struct {
	Saving             int
	RecommendedSavings decimal.Decimal
	SavingRate         int
	Summary            *entity.MonthlySummary
}

// UpdateSavingRateUseCase recomputes a month's savings target from its balance.
type UpdateSavingRateUseCase struct {
	store  adapter.LedgerStore
	reader *Reader
	now    func() time.Time
}

// NewUpdateSavingRateUseCase creates a new UpdateSavingRateUseCase instance.
func NewUpdateSavingRateUseCase(store adapter.LedgerStore, reader *Reader, clock func() time.Time) *UpdateSavingRateUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &UpdateSavingRateUseCase{
		store:  store,
		reader: reader,
		now:    clock,
	}
}

// Execute sets the saving percent and recomputes the recommended savings and
// saving rate. Running totals are left untouched.
func (uc *UpdateSavingRateUseCase) Execute(ctx context.Context, input UpdateSavingRateInput) (*UpdateSavingRateOutput, error) {
	userID, err := guard.AuthorizeOwner(input.CallerID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Percent < 1 || input.Percent > entity.MaxSavingPercent {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidSavingPercent,
			"saving must be an integer between 1 and 100",
			domainerror.ErrInvalidSavingPercent,
		)
	}

	month, err := guard.ParseMonthOrCurrent(input.Month, uc.now)
	if err != nil {
		return nil, err
	}

	var updated *entity.MonthlySummary
	err = uc.store.Atomic(ctx, func(tx adapter.LedgerStore) error {
		current, err := tx.Summaries().FindByMonth(ctx, userID, month)
		if err != nil {
			return domainerror.FromStore(err, "failed to read monthly summary")
		}

		now := uc.now().UTC()
		current.Saving = input.Percent
		current.RecommendedSavings = entity.RecommendedSavingsFromBalance(current.Balance, input.Percent)
		current.RefreshSavingRate()
		current.LastUpdated = &now

		if err := tx.Summaries().UpdateDerived(ctx, current); err != nil {
			return domainerror.FromStore(err, "failed to update monthly summary")
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to update saving rate")
	}

	uc.reader.Invalidate(ctx, userID, month)

	return &UpdateSavingRateOutput{
		Saving:             updated.Saving,
		RecommendedSavings: updated.RecommendedSavings,
		SavingRate:         updated.SavingRate,
		Summary:            updated,
	}, nil
}

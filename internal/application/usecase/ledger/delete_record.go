package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// DeleteRecordInput represents the input for removing a record.
type DeleteRecordInput struct {
	CallerID uuid.UUID
	UserID   string
	Month    string
	RecordID string
}

// DeleteRecordOutput represents the output of removing a record.
type DeleteRecordOutput struct {
	DeletedRecordID uuid.UUID
	Summary         *entity.MonthlySummary
}

// DeleteRecordUseCase removes a record and reverses its summary contribution.
type DeleteRecordUseCase struct {
	store      adapter.LedgerStore
	aggregator *summary.Aggregator
	reader     *summary.Reader
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(
	store adapter.LedgerStore,
	aggregator *summary.Aggregator,
	reader *summary.Reader,
) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		store:      store,
		aggregator: aggregator,
		reader:     reader,
	}
}

// Execute deletes the record and patches the summary atomically: when either
// write fails both the record and the summary stay as they were.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) (*DeleteRecordOutput, error) {
	userID, err := guard.AuthorizeOwner(input.CallerID, input.UserID)
	if err != nil {
		return nil, err
	}

	month, err := guard.ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	recordID, err := uuid.Parse(input.RecordID)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeRecordNotFound,
			"transaction not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if _, err := uc.store.Users().FindByID(ctx, userID); err != nil {
		return nil, domainerror.FromStore(err, "failed to load user")
	}

	var updated *entity.MonthlySummary
	err = uc.store.Atomic(ctx, func(tx adapter.LedgerStore) error {
		record, err := tx.Records().FindByID(ctx, userID, month, recordID)
		if err != nil {
			return domainerror.FromStore(err, "failed to load transaction")
		}
		if err := tx.Records().Delete(ctx, userID, month, recordID); err != nil {
			return domainerror.FromStore(err, "failed to delete transaction")
		}
		updated, err = uc.aggregator.ApplyDelete(ctx, tx, record)
		return err
	})
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to delete transaction")
	}

	uc.reader.Invalidate(ctx, userID, month)

	return &DeleteRecordOutput{
		DeletedRecordID: recordID,
		Summary:         updated,
	}, nil
}

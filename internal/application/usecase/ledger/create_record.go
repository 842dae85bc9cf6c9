// Package ledger contains the use cases that append, remove and list the
// records of a user's month.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// CreateRecordInput represents the input for adding a record. The month is
// always the current UTC month.
type CreateRecordInput struct {
	CallerID    uuid.UUID
	UserID      string
	Type        string
	Category    string
	SubCategory string
	Amount      *decimal.Decimal
	Note        string
	Saving      *int
}

// CreateRecordOutput represents the output of adding a record.
type CreateRecordOutput struct {
	Record  *entity.Record
	Summary *entity.MonthlySummary
}

// CreateRecordUseCase appends a record and folds it into the month summary.
type CreateRecordUseCase struct {
	store      adapter.LedgerStore
	aggregator *summary.Aggregator
	reader     *summary.Reader
	now        func() time.Time
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(
	store adapter.LedgerStore,
	aggregator *summary.Aggregator,
	reader *summary.Reader,
	clock func() time.Time,
) *CreateRecordUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &CreateRecordUseCase{
		store:      store,
		aggregator: aggregator,
		reader:     reader,
		now:        clock,
	}
}

// Execute validates the input, stores the record and patches the summary in
// one store transaction.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	userID, err := guard.AuthorizeOwner(input.CallerID, input.UserID)
	if err != nil {
		return nil, err
	}

	recordType, category, err := validateRecordInput(input)
	if err != nil {
		return nil, err
	}

	if _, err := uc.store.Users().FindByID(ctx, userID); err != nil {
		return nil, domainerror.FromStore(err, "failed to load user")
	}

	record := entity.NewRecord(
		userID,
		recordType,
		category,
		strings.TrimSpace(input.SubCategory),
		*input.Amount,
		strings.TrimSpace(input.Note),
		input.Saving,
		uc.now(),
	)

	var updated *entity.MonthlySummary
	err = uc.store.Atomic(ctx, func(tx adapter.LedgerStore) error {
		if err := tx.Records().Add(ctx, record); err != nil {
			return domainerror.FromStore(err, "failed to save transaction")
		}
		applied, err := uc.aggregator.ApplyCreate(ctx, tx, record)
		if err != nil {
			return err
		}
		updated = applied
		return nil
	})
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to save transaction")
	}

	uc.reader.Invalidate(ctx, userID, record.Month)

	return &CreateRecordOutput{
		Record:  record,
		Summary: updated,
	}, nil
}

func validateRecordInput(input CreateRecordInput) (entity.RecordType, string, error) {
	category := strings.TrimSpace(input.Category)
	if input.Type == "" || category == "" || input.Amount == nil {
		return "", "", domainerror.NewLedgerError(
			domainerror.ErrCodeMissingRecordFields,
			"type, category and amount are required",
			domainerror.ErrMissingRecordFields,
		)
	}

	recordType := entity.RecordType(input.Type)
	if !recordType.IsValid() {
		return "", "", domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidRecordType,
			"type must be income or expenses",
			domainerror.ErrInvalidRecordType,
		)
	}
	return recordType, category, nil
}

package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/application/usecase/guard"
	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// ListRecordsInput represents the input for listing a month's records.
type ListRecordsInput struct {
	CallerID uuid.UUID
	UserID   string
	Month    string
	// Limit of zero selects the default page size.
	Limit int
	// Cursor is the id of the last record of the previous page.
	Cursor string
	// Type filters the returned page only.
	Type string
	// RecordID selects a single record and disables paging.
	RecordID string
}

// ListRecordsOutput represents the output of listing a month's records.
type ListRecordsOutput struct {
	Summary    *entity.MonthlySummary
	Records    []*entity.Record
	LastCursor *uuid.UUID
}

// ListRecordsUseCase pages through a month's records newest first.
type ListRecordsUseCase struct {
	recordRepo   adapter.RecordRepository
	reader       *summary.Reader
	defaultLimit int
	maxLimit     int
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(
	recordRepo adapter.RecordRepository,
	reader *summary.Reader,
	defaultLimit, maxLimit int,
) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo:   recordRepo,
		reader:       reader,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Execute returns the month summary together with one page of records.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	userID, err := guard.AuthorizeOwner(input.CallerID, input.UserID)
	if err != nil {
		return nil, err
	}

	month, err := guard.ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	limit, err := uc.pageSize(input.Limit)
	if err != nil {
		return nil, err
	}

	var typeFilter entity.RecordType
	if input.Type != "" {
		typeFilter = entity.RecordType(input.Type)
		if !typeFilter.IsValid() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidRecordType,
				"type must be income or expenses",
				domainerror.ErrInvalidRecordType,
			)
		}
	}

	monthSummary, err := uc.reader.Read(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	if input.RecordID != "" {
		record, err := uc.findOne(ctx, userID, month, input.RecordID)
		if err != nil {
			return nil, err
		}
		return &ListRecordsOutput{
			Summary: monthSummary,
			Records: []*entity.Record{record},
		}, nil
	}

	page := adapter.RecordPage{Limit: limit}
	if cursor, err := uuid.Parse(input.Cursor); err == nil {
		page.After = &cursor
	}

	records, err := uc.recordRepo.ListOrdered(ctx, userID, month, page)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to fetch monthly transactions")
	}

	// The cursor follows the unfiltered page so the next page starts after it.
	var lastCursor *uuid.UUID
	if len(records) > 0 {
		last := records[len(records)-1].ID
		lastCursor = &last
	}

	return &ListRecordsOutput{
		Summary:    monthSummary,
		Records:    filterByType(records, typeFilter),
		LastCursor: lastCursor,
	}, nil
}

func (uc *ListRecordsUseCase) pageSize(requested int) (int, error) {
	switch {
	case requested < 0:
		return 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPageSize,
			"limit must be a positive integer",
			domainerror.ErrInvalidPageSize,
		)
	case requested == 0:
		return uc.defaultLimit, nil
	case requested > uc.maxLimit:
		return uc.maxLimit, nil
	default:
		return requested, nil
	}
}

func (uc *ListRecordsUseCase) findOne(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey, rawID string) (*entity.Record, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeRecordNotFound,
			"transaction not found",
			domainerror.ErrRecordNotFound,
		)
	}

	record, err := uc.recordRepo.FindByID(ctx, userID, month, id)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to fetch transaction")
	}
	return record, nil
}

func filterByType(records []*entity.Record, recordType entity.RecordType) []*entity.Record {
	if recordType == "" {
		return records
	}
	filtered := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		if r.Type == recordType {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

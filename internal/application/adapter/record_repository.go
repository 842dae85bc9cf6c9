package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// RecordPage selects a window of a month's records ordered newest first.
type RecordPage struct {
	Limit int
	// After is the id of the last record of the previous page. An id that
	// does not exist in the month is ignored.
	After *uuid.UUID
}

// RecordRepository defines persistence for a user's month of ledger records.
type RecordRepository interface {
	// Add inserts the record and assigns its ID.
	Add(ctx context.Context, record *entity.Record) error

	// FindByID retrieves one record of the user's month.
	FindByID(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey, id uuid.UUID) (*entity.Record, error)

	// Delete removes one record of the user's month.
	Delete(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey, id uuid.UUID) error

	// ListOrdered returns records by date descending, honoring the page window.
	ListOrdered(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey, page RecordPage) ([]*entity.Record, error)
}

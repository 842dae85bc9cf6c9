// Package analytics contains read-only reports computed from a month's records.
package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// AnalyticsRepository defines the queries behind the monthly reports.
type AnalyticsRepository interface {
	// ListMonthRecords returns every record of the month, newest first.
	ListMonthRecords(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.Record, error)

	// SumByCategory returns per-category totals of one record type, ordered
	// by category name.
	SumByCategory(
		ctx context.Context,
		userID uuid.UUID,
		month valueobject.MonthKey,
		recordType entity.RecordType,
	) ([]CategoryTotal, error)
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// MonthInput identifies the month a report is computed for.
type MonthInput struct {
	CallerID uuid.UUID
	UserID   string
	Month    string
}

func sumTotals(totals []CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Amount)
	}
	return sum
}

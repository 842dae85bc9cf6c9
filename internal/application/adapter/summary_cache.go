package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// SummaryCache defines a read-through cache for monthly summaries.
type SummaryCache interface {
	// Get returns the cached summary, or nil on a miss.
	Get(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*entity.MonthlySummary, error)

	// Set stores the summary.
	Set(ctx context.Context, summary *entity.MonthlySummary) error

	// Invalidate drops the cached summary of the month.
	Invalidate(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) error
}

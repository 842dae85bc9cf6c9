package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// SummaryRepository defines persistence for monthly summaries.
type SummaryRepository interface {
	// FindByMonth retrieves the summary of the user's month.
	FindByMonth(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*entity.MonthlySummary, error)

	// FindLatestBefore returns the most recent summary strictly before month,
	// or nil when the user has none.
	FindLatestBefore(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*entity.MonthlySummary, error)

	// Insert stores a new summary unless one already exists for the month.
	// It reports whether this call created the row.
	Insert(ctx context.Context, summary *entity.MonthlySummary) (bool, error)

	// Increment atomically adds delta to the running totals. With floorAtZero,
	// totals that would turn negative are stored as zero.
	Increment(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey, delta entity.SummaryDelta, floorAtZero bool, at time.Time) error

	// UpdateDerived patches saving, recommended savings, saving rate and
	// last-updated without touching the running totals.
	UpdateDerived(ctx context.Context, summary *entity.MonthlySummary) error
}

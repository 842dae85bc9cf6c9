package summary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// Reader serves summaries through an optional cache. Months without a
// summary read as zero. Cache failures are logged and never returned.
type Reader struct {
	summaryRepo adapter.SummaryRepository
	cache       adapter.SummaryCache
}

// NewReader creates a new Reader. cache may be nil.
func NewReader(summaryRepo adapter.SummaryRepository, cache adapter.SummaryCache) *Reader {
	return &Reader{
		summaryRepo: summaryRepo,
		cache:       cache,
	}
}

// Read returns the month's summary, or an empty one when absent.
func (r *Reader) Read(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*entity.MonthlySummary, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, userID, month)
		if err != nil {
			slog.Warn("Summary cache read failed", "user_id", userID, "month", month.String(), "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	stored, err := r.summaryRepo.FindByMonth(ctx, userID, month)
	if err != nil {
		if errors.Is(err, domainerror.ErrSummaryNotFound) {
			return entity.EmptySummary(userID, month), nil
		}
		return nil, domainerror.FromStore(err, "failed to read monthly summary")
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, stored); err != nil {
			slog.Warn("Summary cache write failed", "user_id", userID, "month", month.String(), "error", err)
		}
	}
	return stored, nil
}

// Invalidate drops the cached month after a committed write.
func (r *Reader) Invalidate(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Invalidate(ctx, userID, month); err != nil {
		slog.Warn("Summary cache invalidation failed", "user_id", userID, "month", month.String(), "error", err)
	}
}

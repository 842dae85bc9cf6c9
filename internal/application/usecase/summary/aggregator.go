// Package summary maintains the per-user monthly summaries that fold over
// ledger records.
package summary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// Aggregator patches a month's summary as records are added and removed.
// Running totals are changed only through atomic increments; derived fields
// are recomputed from the row read back inside the same store transaction.
type Aggregator struct {
	now func() time.Time
}

// NewAggregator creates a new Aggregator. A nil clock defaults to time.Now.
func NewAggregator(clock func() time.Time) *Aggregator {
	if clock == nil {
		clock = time.Now
	}
	return &Aggregator{now: clock}
}

// ApplyCreate folds a newly added record into its month, creating the month
// summary with carried-forward balances when it does not exist yet.
func (a *Aggregator) ApplyCreate(ctx context.Context, store adapter.LedgerStore, record *entity.Record) (*entity.MonthlySummary, error) {
	summaries := store.Summaries()
	now := a.now().UTC()

	if err := a.ensureSummary(ctx, summaries, record, now); err != nil {
		return nil, err
	}

	if err := summaries.Increment(ctx, record.UserID, record.Month, entity.CreateDelta(record), false, now); err != nil {
		return nil, domainerror.FromStore(err, "failed to update monthly summary")
	}

	current, err := summaries.FindByMonth(ctx, record.UserID, record.Month)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to read monthly summary")
	}

	// The savings target is fixed by the first income of the month.
	if current.IsFirstIncome(record) {
		current.Saving = record.Saving
		current.RecommendedSavings = entity.RecommendedSavingsFromIncome(record.Amount, record.Saving)
	}
	current.RefreshSavingRate()
	current.LastUpdated = &now

	if err := summaries.UpdateDerived(ctx, current); err != nil {
		return nil, domainerror.FromStore(err, "failed to update monthly summary")
	}

	slog.Debug("Summary updated for new record",
		"user_id", record.UserID,
		"month", record.Month.String(),
		"record_id", record.ID,
		"balance", current.Balance.String(),
	)

	return current, nil
}

// ApplyDelete reverses a removed record's contribution. Totals are floored at
// zero; recommended savings stay as they are.
func (a *Aggregator) ApplyDelete(ctx context.Context, store adapter.LedgerStore, record *entity.Record) (*entity.MonthlySummary, error) {
	summaries := store.Summaries()
	now := a.now().UTC()
	delta := entity.DeleteDelta(record)

	before, err := summaries.FindByMonth(ctx, record.UserID, record.Month)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to read monthly summary")
	}

	if clamped := before.ClampedFields(delta); len(clamped) > 0 {
		slog.Warn("Summary clamped to zero on delete",
			"user_id", record.UserID,
			"month", record.Month.String(),
			"record_id", record.ID,
			"fields", clamped,
		)
	}

	if err := summaries.Increment(ctx, record.UserID, record.Month, delta, true, now); err != nil {
		return nil, domainerror.FromStore(err, "failed to update monthly summary")
	}

	current, err := summaries.FindByMonth(ctx, record.UserID, record.Month)
	if err != nil {
		return nil, domainerror.FromStore(err, "failed to read monthly summary")
	}

	current.RefreshSavingRate()
	current.LastUpdated = &now

	if err := summaries.UpdateDerived(ctx, current); err != nil {
		return nil, domainerror.FromStore(err, "failed to update monthly summary")
	}

	return current, nil
}

func (a *Aggregator) ensureSummary(ctx context.Context, summaries adapter.SummaryRepository, record *entity.Record, now time.Time) error {
	_, err := summaries.FindByMonth(ctx, record.UserID, record.Month)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerror.ErrSummaryNotFound) {
		return domainerror.FromStore(err, "failed to read monthly summary")
	}

	prior, err := summaries.FindLatestBefore(ctx, record.UserID, record.Month)
	if err != nil {
		return domainerror.FromStore(err, "failed to read previous summary")
	}

	seed := entity.NewMonthlySummary(record.UserID, record.Month, prior, now)
	created, err := summaries.Insert(ctx, seed)
	if err != nil {
		return domainerror.FromStore(err, "failed to create monthly summary")
	}
	if created {
		slog.Info("Monthly summary created",
			"user_id", record.UserID,
			"month", record.Month.String(),
			"carried_balance", seed.Balance.String(),
			"carried_saving_balance", seed.SavingBalance.String(),
		)
	}
	return nil
}

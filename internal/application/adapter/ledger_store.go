package adapter

import "context"

// LedgerStore groups the repositories a ledger mutation touches.
type LedgerStore interface {
	Users() UserRepository
	Records() RecordRepository
	Summaries() SummaryRepository

	// Atomic runs fn against a store whose writes commit together, or not
	// at all when fn returns an error.
	Atomic(ctx context.Context, fn func(tx LedgerStore) error) error
}

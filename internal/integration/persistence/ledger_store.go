package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-tracker/wallet/internal/application/adapter"
)

// ledgerStore implements the adapter.LedgerStore interface over one gorm
// handle, which is a transaction inside Atomic.
type ledgerStore struct {
	db *gorm.DB
}

// NewLedgerStore creates a new ledger store instance.
func NewLedgerStore(db *gorm.DB) adapter.LedgerStore {
	return &ledgerStore{
		db: db,
	}
}

func (s *ledgerStore) Users() adapter.UserRepository {
	return NewUserRepository(s.db)
}

func (s *ledgerStore) Records() adapter.RecordRepository {
	return NewRecordRepository(s.db)
}

func (s *ledgerStore) Summaries() adapter.SummaryRepository {
	return NewSummaryRepository(s.db)
}

// Atomic runs fn inside a database transaction.
func (s *ledgerStore) Atomic(ctx context.Context, fn func(tx adapter.LedgerStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerStore{db: tx})
	})
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// RecordType represents the direction of a ledger record.
type RecordType string

const (
	RecordTypeIncome   RecordType = "income"
	RecordTypeExpenses RecordType = "expenses"
)

// IsValid checks if the record type is one of the supported values.
func (t RecordType) IsValid() bool {
	return t == RecordTypeIncome || t == RecordTypeExpenses
}

// SavingCategory is the category routing an amount into the saving balance.
const SavingCategory = "saving"

// Saving percent bounds for a record hint.
const (
	MinSavingPercent = 0
	MaxSavingPercent = 100
)

// Record is an immutable income or expense entry inside a user's month.
type Record struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Month       valueobject.MonthKey
	Type        RecordType
	Category    string
	SubCategory string
	Amount      decimal.Decimal
	Note        string
	Saving      int
	Date        time.Time
	CreatedAt   time.Time
}

// NewRecord builds a record stamped at now. The amount is stored as its absolute
// value rounded to cents and the saving hint is clamped into [0,100]. The ID is
// assigned on insert.
func NewRecord(
	userID uuid.UUID,
	recordType RecordType,
	category, subCategory string,
	amount decimal.Decimal,
	note string,
	saving *int,
	now time.Time,
) *Record {
	now = now.UTC()
	return &Record{
		UserID:      userID,
		Month:       valueobject.MonthKeyOf(now),
		Type:        recordType,
		Category:    category,
		SubCategory: subCategory,
		Amount:      amount.Abs().Round(2),
		Note:        note,
		Saving:      ClampSavingPercent(saving),
		Date:        now,
		CreatedAt:   now,
	}
}

// ClampSavingPercent normalizes an optional saving hint; nil means 0.
func ClampSavingPercent(saving *int) int {
	if saving == nil {
		return 0
	}
	switch {
	case *saving < MinSavingPercent:
		return MinSavingPercent
	case *saving > MaxSavingPercent:
		return MaxSavingPercent
	default:
		return *saving
	}
}

// IsIncome reports whether the record adds to total income.
func (r *Record) IsIncome() bool {
	return r.Type == RecordTypeIncome
}

// IsSaving reports whether the record is routed into the saving balance.
func (r *Record) IsSaving() bool {
	return r.Category == SavingCategory
}

// SignedAmount returns the record's effect on balance: positive for income,
// negative for expenses.
func (r *Record) SignedAmount() decimal.Decimal {
	if r.IsIncome() {
		return r.Amount
	}
	return r.Amount.Neg()
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// MonthlySummary is the running aggregate of one user's month.
type MonthlySummary struct {
	UserID               uuid.UUID
	Month                valueobject.MonthKey
	Label                string
	TotalIncome          decimal.Decimal
	TotalExpenses        decimal.Decimal
	Balance              decimal.Decimal
	Saving               int
	SavingBalance        decimal.Decimal
	RecommendedSavings   decimal.Decimal
	SavingRate           int
	PreviousMonthBalance decimal.Decimal
	CreatedAt            time.Time
	LastUpdated          *time.Time
}

// NewMonthlySummary seeds a month, carrying balance and saving balance from
// the latest prior summary. A nil prior starts from zero.
func NewMonthlySummary(userID uuid.UUID, month valueobject.MonthKey, prior *MonthlySummary, now time.Time) *MonthlySummary {
	summary := EmptySummary(userID, month)
	if prior != nil {
		summary.Balance = prior.Balance
		summary.SavingBalance = prior.SavingBalance
		summary.PreviousMonthBalance = prior.Balance
	}
	now = now.UTC()
	summary.CreatedAt = now
	summary.LastUpdated = &now
	return summary
}

// EmptySummary returns the zero summary reported for months without records.
func EmptySummary(userID uuid.UUID, month valueobject.MonthKey) *MonthlySummary {
	return &MonthlySummary{
		UserID:               userID,
		Month:                month,
		Label:                month.Label(),
		TotalIncome:          decimal.Zero,
		TotalExpenses:        decimal.Zero,
		Balance:              decimal.Zero,
		SavingBalance:        decimal.Zero,
		RecommendedSavings:   decimal.Zero,
		PreviousMonthBalance: decimal.Zero,
	}
}

// SummaryDelta is the field-level increment a record applies to a summary.
type SummaryDelta struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	SavingBalance decimal.Decimal
}

// CreateDelta returns the contribution of adding r to its month.
func CreateDelta(r *Record) SummaryDelta {
	delta := SummaryDelta{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Balance:       r.SignedAmount(),
		SavingBalance: decimal.Zero,
	}
	if r.IsIncome() {
		delta.TotalIncome = r.Amount
	} else {
		delta.TotalExpenses = r.Amount
	}
	if r.IsSaving() {
		delta.SavingBalance = r.Amount
	}
	return delta
}

// DeleteDelta returns the exact reversal of CreateDelta(r).
func DeleteDelta(r *Record) SummaryDelta {
	return CreateDelta(r).Negate()
}

// Negate flips the sign of every field.
func (d SummaryDelta) Negate() SummaryDelta {
	return SummaryDelta{
		TotalIncome:   d.TotalIncome.Neg(),
		TotalExpenses: d.TotalExpenses.Neg(),
		Balance:       d.Balance.Neg(),
		SavingBalance: d.SavingBalance.Neg(),
	}
}

// Apply adds d to the summary totals. With floorAtZero set, any total that
// would go negative is stored as zero instead.
func (s *MonthlySummary) Apply(d SummaryDelta, floorAtZero bool) {
	s.TotalIncome = addDelta(s.TotalIncome, d.TotalIncome, floorAtZero)
	s.TotalExpenses = addDelta(s.TotalExpenses, d.TotalExpenses, floorAtZero)
	s.Balance = addDelta(s.Balance, d.Balance, floorAtZero)
	s.SavingBalance = addDelta(s.SavingBalance, d.SavingBalance, floorAtZero)
}

// ClampedFields lists the fields that would fall below zero if d were applied.
func (s *MonthlySummary) ClampedFields(d SummaryDelta) []string {
	var fields []string
	check := func(name string, current, delta decimal.Decimal) {
		if current.Add(delta).IsNegative() {
			fields = append(fields, name)
		}
	}
	check("totalIncome", s.TotalIncome, d.TotalIncome)
	check("totalExpenses", s.TotalExpenses, d.TotalExpenses)
	check("balance", s.Balance, d.Balance)
	check("savingBalance", s.SavingBalance, d.SavingBalance)
	return fields
}

// IsFirstIncome reports whether r, already folded into s, is the month's first
// income, i.e. total income before it was exactly zero.
func (s *MonthlySummary) IsFirstIncome(r *Record) bool {
	return r.IsIncome() && s.TotalIncome.Sub(r.Amount).IsZero()
}

// RefreshSavingRate recomputes SavingRate from the current balances.
func (s *MonthlySummary) RefreshSavingRate() {
	s.SavingRate = SavingRate(s.SavingBalance, s.RecommendedSavings)
}

// SavingRate returns round(savingBalance / recommended * 100), or 0 when
// there is no positive target.
func SavingRate(savingBalance, recommended decimal.Decimal) int {
	if !recommended.IsPositive() {
		return 0
	}
	return int(savingBalance.Div(recommended).Mul(hundred).Round(0).IntPart())
}

// RecommendedSavingsFromIncome returns amount * percent / 100 in cents.
func RecommendedSavingsFromIncome(amount decimal.Decimal, percent int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(percent))).Div(hundred).Round(2)
}

// RecommendedSavingsFromBalance returns round(balance * percent / 100).
func RecommendedSavingsFromBalance(balance decimal.Decimal, percent int) decimal.Decimal {
	return balance.Mul(decimal.NewFromInt(int64(percent))).Div(hundred).Round(0)
}

func addDelta(current, delta decimal.Decimal, floorAtZero bool) decimal.Decimal {
	result := current.Add(delta)
	if floorAtZero && result.IsNegative() {
		return decimal.Zero
	}
	return result
}

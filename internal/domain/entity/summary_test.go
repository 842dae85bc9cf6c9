package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func intPtr(v int) *int {
	return &v
}

func TestNewRecord_Normalizes(t *testing.T) {
	now := time.Date(2024, time.November, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		amount     string
		saving     *int
		wantAmount string
		wantSaving int
	}{
		{name: "negative amount made absolute", amount: "-250.50", saving: nil, wantAmount: "250.5", wantSaving: 0},
		{name: "saving above range", amount: "10", saving: intPtr(150), wantAmount: "10", wantSaving: 100},
		{name: "saving below range", amount: "10", saving: intPtr(-5), wantAmount: "10", wantSaving: 0},
		{name: "saving in range", amount: "10", saving: intPtr(20), wantAmount: "10", wantSaving: 20},
		{name: "fraction of a cent rounds half up", amount: "10.005", saving: nil, wantAmount: "10.01", wantSaving: 0},
		{name: "negative fraction of a cent", amount: "-0.004", saving: nil, wantAmount: "0", wantSaving: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord(uuid.New(), RecordTypeIncome, "salary", "", dec(tt.amount), "", tt.saving, now)

			assert.True(t, dec(tt.wantAmount).Equal(r.Amount), "amount %s", r.Amount)
			assert.Equal(t, tt.wantSaving, r.Saving)
			assert.Equal(t, "2024-11", r.Month.String())
			assert.Equal(t, now, r.Date)
		})
	}
}

func TestCreateDelta(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   SummaryDelta
	}{
		{
			name:   "income",
			record: Record{Type: RecordTypeIncome, Category: "salary", Amount: dec("1000")},
			want:   SummaryDelta{TotalIncome: dec("1000"), TotalExpenses: dec("0"), Balance: dec("1000"), SavingBalance: dec("0")},
		},
		{
			name:   "expense",
			record: Record{Type: RecordTypeExpenses, Category: "food", Amount: dec("40")},
			want:   SummaryDelta{TotalIncome: dec("0"), TotalExpenses: dec("40"), Balance: dec("-40"), SavingBalance: dec("0")},
		},
		{
			name:   "expense routed to saving",
			record: Record{Type: RecordTypeExpenses, Category: SavingCategory, Amount: dec("150")},
			want:   SummaryDelta{TotalIncome: dec("0"), TotalExpenses: dec("150"), Balance: dec("-150"), SavingBalance: dec("150")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateDelta(&tt.record)

			assert.True(t, tt.want.TotalIncome.Equal(got.TotalIncome))
			assert.True(t, tt.want.TotalExpenses.Equal(got.TotalExpenses))
			assert.True(t, tt.want.Balance.Equal(got.Balance))
			assert.True(t, tt.want.SavingBalance.Equal(got.SavingBalance))

			reverse := DeleteDelta(&tt.record)
			assert.True(t, got.Balance.Neg().Equal(reverse.Balance))
			assert.True(t, got.SavingBalance.Neg().Equal(reverse.SavingBalance))
		})
	}
}

func TestMonthlySummary_ApplyAndReverse(t *testing.T) {
	month, _ := valueobject.ParseMonthKey("2024-11")
	s := EmptySummary(uuid.New(), month)
	r := &Record{Type: RecordTypeExpenses, Category: SavingCategory, Amount: dec("150")}
	s.Balance = dec("1000")

	s.Apply(CreateDelta(r), false)
	assert.True(t, dec("850").Equal(s.Balance))
	assert.True(t, dec("150").Equal(s.SavingBalance))

	s.Apply(DeleteDelta(r), true)
	assert.True(t, dec("1000").Equal(s.Balance))
	assert.True(t, s.SavingBalance.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
}

func TestMonthlySummary_ClampedFields(t *testing.T) {
	month, _ := valueobject.ParseMonthKey("2024-11")
	s := EmptySummary(uuid.New(), month)
	s.TotalIncome = dec("100")
	s.Balance = dec("100")
	r := &Record{Type: RecordTypeIncome, Category: "salary", Amount: dec("300")}

	fields := s.ClampedFields(DeleteDelta(r))
	assert.ElementsMatch(t, []string{"totalIncome", "balance"}, fields)

	s.Apply(DeleteDelta(r), true)
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.Balance.IsZero())
}

func TestNewMonthlySummary_CarriesForward(t *testing.T) {
	month, _ := valueobject.ParseMonthKey("2024-12")
	prior := &MonthlySummary{Balance: dec("850"), SavingBalance: dec("150"), TotalIncome: dec("1000")}
	now := time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC)

	s := NewMonthlySummary(uuid.New(), month, prior, now)

	assert.True(t, dec("850").Equal(s.Balance))
	assert.True(t, dec("850").Equal(s.PreviousMonthBalance))
	assert.True(t, dec("150").Equal(s.SavingBalance))
	assert.True(t, s.TotalIncome.IsZero())
	assert.Equal(t, "December 2024", s.Label)
	assert.NotNil(t, s.LastUpdated)

	fresh := NewMonthlySummary(uuid.New(), month, nil, now)
	assert.True(t, fresh.Balance.IsZero())
}

func TestSavingRate(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		recommended string
		want        int
	}{
		{name: "no target", balance: "150", recommended: "0", want: 0},
		{name: "three quarters", balance: "150", recommended: "200", want: 75},
		{name: "rounds half up", balance: "1", recommended: "8", want: 13},
		{name: "over target", balance: "300", recommended: "200", want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SavingRate(dec(tt.balance), dec(tt.recommended)))
		})
	}
}

func TestRecommendedSavings(t *testing.T) {
	assert.True(t, dec("200").Equal(RecommendedSavingsFromIncome(dec("1000"), 20)))
	assert.True(t, dec("0.33").Equal(RecommendedSavingsFromIncome(dec("3.33"), 10)))
	assert.True(t, dec("255").Equal(RecommendedSavingsFromBalance(dec("850"), 30)))
	assert.True(t, dec("86").Equal(RecommendedSavingsFromBalance(dec("855"), 10)))
}

func TestIsFirstIncome(t *testing.T) {
	r := &Record{Type: RecordTypeIncome, Amount: dec("1000")}

	first := &MonthlySummary{TotalIncome: dec("1000")}
	assert.True(t, first.IsFirstIncome(r))

	second := &MonthlySummary{TotalIncome: dec("1500")}
	assert.False(t, second.IsFirstIncome(r))

	expense := &Record{Type: RecordTypeExpenses, Amount: dec("1000")}
	assert.False(t, first.IsFirstIncome(expense))
}

package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/wallet/internal/application/usecase/analytics"
	"github.com/finance-tracker/wallet/internal/application/usecase/ledger"
	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/integration/persistence"
	"github.com/finance-tracker/wallet/internal/integration/persistence/persistencetest"
)

type seeded struct {
	userID    uuid.UUID
	trend     *analytics.GetFinancialTrendUseCase
	dist      *analytics.GetDistributionUseCase
	breakdown *analytics.GetMonthlyBreakdownUseCase
}

func seed(t *testing.T) *seeded {
	t.Helper()
	db := persistencetest.NewDB(t)
	user := persistencetest.SeedUser(t, db)
	store := persistence.NewLedgerStore(db)
	now := time.Date(2024, time.November, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	reader := summary.NewReader(store.Summaries(), nil)
	create := ledger.NewCreateRecordUseCase(store, summary.NewAggregator(clock), reader, clock)

	saving := 10
	entries := []struct {
		recordType string
		category   string
		amount     string
		saving     *int
	}{
		{"income", "salary", "2000", &saving},
		{"income", "freelance", "500", nil},
		{"expenses", "rent", "800", nil},
		{"expenses", "food", "120.50", nil},
		{"expenses", "food", "79.50", nil},
		{"expenses", entity.SavingCategory, "100", nil},
	}
	for _, e := range entries {
		d := decimal.RequireFromString(e.amount)
		_, err := create.Execute(context.Background(), ledger.CreateRecordInput{
			CallerID: user.ID,
			UserID:   user.ID.String(),
			Type:     e.recordType,
			Category: e.category,
			Amount:   &d,
			Saving:   e.saving,
		})
		require.NoError(t, err)
		now = now.Add(time.Hour)
	}

	repo := persistence.NewAnalyticsRepository(db)
	return &seeded{
		userID:    user.ID,
		trend:     analytics.NewGetFinancialTrendUseCase(repo, reader),
		dist:      analytics.NewGetDistributionUseCase(repo),
		breakdown: analytics.NewGetMonthlyBreakdownUseCase(repo, reader),
	}
}

func (s *seeded) input(month string) analytics.MonthInput {
	return analytics.MonthInput{CallerID: s.userID, UserID: s.userID.String(), Month: month}
}

func TestGetFinancialTrendUseCase(t *testing.T) {
	s := seed(t)

	out, err := s.trend.Execute(context.Background(), s.input("2024-11"))
	require.NoError(t, err)

	assert.Len(t, out.Income, 2)
	assert.Len(t, out.Expenses, 4)
	assert.Equal(t, "freelance", out.Income[0].Category, "newest first")
	assert.Equal(t, 10, out.Savings)
	assert.True(t, decimal.NewFromInt(2500).Equal(out.TotalIncome))
	assert.True(t, decimal.NewFromInt(1100).Equal(out.TotalExpenses))
	assert.True(t, decimal.NewFromInt(1400).Equal(out.NetCashFlow))

	empty, err := s.trend.Execute(context.Background(), s.input("2024-01"))
	require.NoError(t, err)
	assert.Empty(t, empty.Income)
	assert.True(t, empty.NetCashFlow.IsZero())
}

func TestGetDistributionUseCase(t *testing.T) {
	s := seed(t)

	out, err := s.dist.Execute(context.Background(), analytics.DistributionInput{
		MonthInput: s.input("2024-11"),
		Type:       entity.RecordTypeExpenses,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"food", "rent", entity.SavingCategory}, out.Categories)
	require.Len(t, out.Amounts, 3)
	assert.True(t, decimal.NewFromInt(200).Equal(out.Amounts[0]), "food %s", out.Amounts[0])
	assert.True(t, decimal.NewFromInt(1100).Equal(out.Total))

	_, err = s.dist.Execute(context.Background(), analytics.DistributionInput{
		MonthInput: s.input("2024-11"),
		Type:       "saving",
	})
	assert.ErrorIs(t, err, domainerror.ErrInvalidRecordType)
}

func TestGetMonthlyBreakdownUseCase(t *testing.T) {
	s := seed(t)

	out, err := s.breakdown.Execute(context.Background(), s.input("2024-11"))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(2500).Equal(out.TotalIncome))
	assert.True(t, decimal.NewFromInt(1100).Equal(out.TotalExpenses))
	assert.True(t, decimal.NewFromInt(1400).Equal(out.NetCashFlow))
	assert.True(t, decimal.NewFromInt(100).Equal(out.Savings))
	assert.True(t, decimal.NewFromInt(200).Equal(out.RecommendedSavings))
	require.Len(t, out.IncomeBreakdown, 2)
	assert.Equal(t, "freelance", out.IncomeBreakdown[0].Category)
}

func TestAnalytics_Authorization(t *testing.T) {
	s := seed(t)
	intruder := analytics.MonthInput{CallerID: uuid.New(), UserID: s.userID.String(), Month: "2024-11"}

	_, err := s.trend.Execute(context.Background(), intruder)
	assert.ErrorIs(t, err, domainerror.ErrNotAuthorizedForUser)

	_, err = s.breakdown.Execute(context.Background(), intruder)
	assert.ErrorIs(t, err, domainerror.ErrNotAuthorizedForUser)

	_, err = s.breakdown.Execute(context.Background(), s.input("24-11"))
	assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)
}

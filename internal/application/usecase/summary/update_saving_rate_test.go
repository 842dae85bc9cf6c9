package summary_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/wallet/internal/application/usecase/summary"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

func TestUpdateSavingRateUseCase_Execute(t *testing.T) {
	f := newFixture(t)
	f.add(t, entity.RecordTypeIncome, "salary", "1000", intPtr(20))
	f.add(t, entity.RecordTypeExpenses, entity.SavingCategory, "150", nil)

	uc := summary.NewUpdateSavingRateUseCase(f.store, summary.NewReader(f.store.Summaries(), nil), func() time.Time { return f.now })

	out, err := uc.Execute(context.Background(), summary.UpdateSavingRateInput{
		CallerID: f.userID,
		UserID:   f.userID.String(),
		Percent:  30,
	})
	require.NoError(t, err)

	// balance 850 * 30% = 255; 150 / 255 = 58.8%
	assert.Equal(t, 30, out.Saving)
	assertMoney(t, "255", out.RecommendedSavings, "recommendedSavings")
	assert.Equal(t, 59, out.SavingRate)
	assertMoney(t, "850", out.Summary.Balance, "balance unchanged")

	// A later income does not re-trigger the first-income recompute.
	_, s := f.add(t, entity.RecordTypeIncome, "bonus", "500", intPtr(90))
	assertMoney(t, "255", s.RecommendedSavings, "recommendedSavings after income")
	assert.Equal(t, 30, s.Saving)
}

func TestUpdateSavingRateUseCase_Errors(t *testing.T) {
	f := newFixture(t)
	f.add(t, entity.RecordTypeIncome, "salary", "1000", intPtr(20))
	uc := summary.NewUpdateSavingRateUseCase(f.store, summary.NewReader(f.store.Summaries(), nil), func() time.Time { return f.now })

	tests := []struct {
		name     string
		input    summary.UpdateSavingRateInput
		wantErr  error
		wantKind domainerror.ErrorKind
	}{
		{
			name:     "other caller",
			input:    summary.UpdateSavingRateInput{CallerID: uuid.New(), UserID: f.userID.String(), Percent: 10},
			wantErr:  domainerror.ErrNotAuthorizedForUser,
			wantKind: domainerror.KindAuthorization,
		},
		{
			name:     "zero percent",
			input:    summary.UpdateSavingRateInput{CallerID: f.userID, UserID: f.userID.String(), Percent: 0},
			wantErr:  domainerror.ErrInvalidSavingPercent,
			wantKind: domainerror.KindValidation,
		},
		{
			name:     "above one hundred",
			input:    summary.UpdateSavingRateInput{CallerID: f.userID, UserID: f.userID.String(), Percent: 101},
			wantErr:  domainerror.ErrInvalidSavingPercent,
			wantKind: domainerror.KindValidation,
		},
		{
			name:     "bad month",
			input:    summary.UpdateSavingRateInput{CallerID: f.userID, UserID: f.userID.String(), Month: "2024-1", Percent: 10},
			wantErr:  domainerror.ErrInvalidMonth,
			wantKind: domainerror.KindValidation,
		},
		{
			name:     "month without summary",
			input:    summary.UpdateSavingRateInput{CallerID: f.userID, UserID: f.userID.String(), Month: "2023-01", Percent: 10},
			wantErr:  domainerror.ErrSummaryNotFound,
			wantKind: domainerror.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			kind, ok := domainerror.KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

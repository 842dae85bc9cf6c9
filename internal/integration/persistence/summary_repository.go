package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
	"github.com/finance-tracker/wallet/internal/integration/persistence/model"
)

// summaryRepository implements the adapter.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) adapter.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// FindByMonth retrieves the summary of the user's month.
func (r *summaryRepository) FindByMonth(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.MonthKey,
) (*entity.MonthlySummary, error) {
	var summaryModel model.MonthlySummaryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month.String()).
		First(&summaryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSummaryNotFound
		}
		return nil, result.Error
	}
	return summaryModel.ToEntity(), nil
}

// FindLatestBefore returns the most recent summary strictly before month.
// Month keys sort lexically in calendar order.
func (r *summaryRepository) FindLatestBefore(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.MonthKey,
) (*entity.MonthlySummary, error) {
	var summaryModel model.MonthlySummaryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month < ?", userID, month.String()).
		Order("month DESC").
		Take(&summaryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return summaryModel.ToEntity(), nil
}

// Insert stores a new summary unless the month already has one.
func (r *summaryRepository) Insert(ctx context.Context, summary *entity.MonthlySummary) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
			DoNothing: true,
		}).
		Create(model.SummaryFromEntity(summary))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Increment adds delta to the running totals in a single UPDATE statement so
// concurrent writers never lose each other's contribution.
func (r *summaryRepository) Increment(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.MonthKey,
	delta entity.SummaryDelta,
	floorAtZero bool,
	at time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&model.MonthlySummaryModel{}).
		Where("user_id = ? AND month = ?", userID, month.String()).
		Updates(map[string]interface{}{
			"total_income":   incrementExpr("total_income", delta.TotalIncome, floorAtZero),
			"total_expenses": incrementExpr("total_expenses", delta.TotalExpenses, floorAtZero),
			"balance":        incrementExpr("balance", delta.Balance, floorAtZero),
			"saving_balance": incrementExpr("saving_balance", delta.SavingBalance, floorAtZero),
			"last_updated":   at.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSummaryNotFound
	}
	return nil
}

// UpdateDerived patches the fields computed from the running totals.
func (r *summaryRepository) UpdateDerived(ctx context.Context, summary *entity.MonthlySummary) error {
	result := r.db.WithContext(ctx).
		Model(&model.MonthlySummaryModel{}).
		Where("user_id = ? AND month = ?", summary.UserID, summary.Month.String()).
		Updates(map[string]interface{}{
			"saving":              summary.Saving,
			"recommended_savings": model.ToCents(summary.RecommendedSavings),
			"saving_rate":         summary.SavingRate,
			"last_updated":        summary.LastUpdated,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSummaryNotFound
	}
	return nil
}

func incrementExpr(column string, delta decimal.Decimal, floorAtZero bool) clause.Expr {
	cents := model.ToCents(delta)
	if floorAtZero {
		return gorm.Expr(fmt.Sprintf("CASE WHEN %s + ? < 0 THEN 0 ELSE %s + ? END", column, column), cents, cents)
	}
	return gorm.Expr(column+" + ?", cents)
}

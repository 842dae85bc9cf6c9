package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/wallet/internal/application/usecase/analytics"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
	"github.com/finance-tracker/wallet/internal/integration/persistence/model"
)

// analyticsRepository implements the analytics.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// ListMonthRecords returns every record of the month, newest first.
func (r *analyticsRepository) ListMonthRecords(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.MonthKey,
) ([]*entity.Record, error) {
	var models []model.RecordModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month.String()).
		Order("date DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list month records: %w", err)
	}

	records := make([]*entity.Record, len(models))
	for i := range models {
		records[i] = models[i].ToEntity()
	}
	return records, nil
}

// SumByCategory returns per-category totals of one record type.
func (r *analyticsRepository) SumByCategory(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.MonthKey,
	recordType entity.RecordType,
) ([]analytics.CategoryTotal, error) {
	var results []struct {
		Category string `gorm:"column:category"`
		Amount   int64  `gorm:"column:amount"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Select("category, COALESCE(SUM(amount), 0) as amount").
		Where("user_id = ? AND month = ? AND type = ?", userID, month.String(), string(recordType)).
		Group("category").
		Order("category ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum by category: %w", err)
	}

	totals := make([]analytics.CategoryTotal, len(results))
	for i, row := range results {
		totals[i] = analytics.CategoryTotal{
			Category: row.Category,
			Amount:   model.FromCents(row.Amount),
		}
	}
	return totals, nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
	"github.com/finance-tracker/wallet/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Add inserts the record and assigns its ID.
func (r *recordRepository) Add(ctx context.Context, record *entity.Record) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(model.RecordFromEntity(record)).Error
}

// FindByID retrieves one record of the user's month.
func (r *recordRepository) FindByID(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.MonthKey,
	id uuid.UUID,
) (*entity.Record, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND month = ?", id, userID, month.String()).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// Delete removes one record of the user's month.
func (r *recordRepository) Delete(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.MonthKey,
	id uuid.UUID,
) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND month = ?", id, userID, month.String()).
		Delete(&model.RecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}

// ListOrdered returns records by date descending. Ties on date are broken
// by id so the cursor position is unambiguous.
func (r *recordRepository) ListOrdered(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.MonthKey,
	page adapter.RecordPage,
) ([]*entity.Record, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month.String())

	if page.After != nil {
		var cursor model.RecordModel
		err := r.db.WithContext(ctx).
			Select("id", "date").
			Where("id = ? AND user_id = ? AND month = ?", *page.After, userID, month.String()).
			Take(&cursor).Error
		switch {
		case err == nil:
			query = query.Where("(date < ? OR (date = ? AND id < ?))", cursor.Date, cursor.Date, cursor.ID)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	var models []model.RecordModel
	if err := query.Order("date DESC").Order("id DESC").Limit(page.Limit).Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*entity.Record, len(models))
	for i := range models {
		records[i] = models[i].ToEntity()
	}
	return records, nil
}
